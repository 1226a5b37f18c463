package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-stomp/stomp/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

// NetworkQueue carries network change events from the relay and the loader to
// the cache invalidation consumer.
const NetworkQueue = "network"

func rabbitURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		GetEnv("MQ_USER", "guest"),
		GetEnv("MQ_PASSWORD", "guest"),
		GetEnv("MQ_HOST", "rabbitmq"),
		GetEnv("MQ_PORT", "5672"),
	)
}

func NewRabbitConnection() (*amqp.Connection, *amqp.Channel, error) {
	connection, err := NewRabbitConnectionOnly()
	if err != nil {
		return nil, nil, err
	}
	channel, err := connection.Channel()
	if err != nil {
		connection.Close()
		return nil, nil, err
	}

	return connection, channel, nil
}

func NewRabbitConnectionOnly() (*amqp.Connection, error) {
	config := amqp.Config{
		Heartbeat: 60 * time.Second,
		Locale:    "en_US",
	}

	connection, err := amqp.DialConfig(rabbitURL(), config)
	if err != nil {
		return nil, err
	}

	return connection, nil
}

func DeclareNetworkQueue(channel *amqp.Channel) error {
	_, err := channel.QueueDeclare(NetworkQueue, true, false, false, false, nil)
	return err
}

func NewNetworkFeedConnection() (*stomp.Conn, error) {
	url := GetEnv("NETWORK_FEED_ENDPOINT", "admin:61613")
	username := GetEnv("NETWORK_FEED_USERNAME", "")
	password := GetEnv("NETWORK_FEED_PASSWORD", "")

	conn, err := stomp.Dial("tcp", url,
		stomp.ConnOpt.Login(username, password),
		stomp.ConnOpt.HeartBeat(30*time.Second, 30*time.Second),
	)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

func NewRedisClient() *redis.Client {
	// defaults to the redis service in the cluster
	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDR", "redis:6379"),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvInt("REDIS_DB", 0),
	})

	return rdb
}

func NewPostgresConnection() (*pgxpool.Pool, error) {
	dbConnectionString := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		GetEnv("POSTGRES_HOST", "postgres"),
		GetEnv("POSTGRES_PORT", "5432"),
		GetEnv("POSTGRES_USER", "metro"),
		GetEnv("POSTGRES_PASSWORD", ""),
		GetEnv("POSTGRES_DB", "metro"),
	)

	connection, err := pgxpool.New(context.Background(), dbConnectionString)
	if err != nil {
		return nil, err
	}

	return connection, nil
}
