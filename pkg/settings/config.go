package settings

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/datastructs/queue"
)

type Config struct {
	Queue  Queue  `mapstructure:"queue" yaml:"queue"`
	Logger Logger `mapstructure:"logger" yaml:"logger"`
}

// Queue is the configuration for the growable queue
type Queue struct {
	InitialCapacity int `mapstructure:"initial_capacity" yaml:"initial_capacity" validate:"gte=1"`
	MaxCapacity     int `mapstructure:"max_capacity" yaml:"max_capacity" validate:"omitempty,gtefield=InitialCapacity"`
}

// ToConfig builds the queue constructor config.
func (q Queue) ToConfig(logger *zap.Logger) queue.Config {
	return queue.Config{
		InitialCapacity: q.InitialCapacity,
		MaxCapacity:     q.MaxCapacity,
		Logger:          logger,
	}
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}
