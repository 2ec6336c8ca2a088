package service

import "time"

// Clock - источник текущего времени для сервисов
type Clock interface {
	Now() time.Time
}

// SystemClock возвращает текущее время в UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
