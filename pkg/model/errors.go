package model

import (
	"errors"
	"fmt"
)

// 输入校验错误：唯一会直接返回给调用方的请求级错误
var (
	ErrEmptyText   = errors.New("text must not be empty")
	ErrTextTooLong = fmt.Errorf("text exceeds %d characters", MaxTextLength)
)

// ConfigError 配置或知识库加载失败，进程启动时致命
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error (%s): %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
