package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrRange      = errors.New("value out of range")
)

// ValidationError - некорректный или отсутствующий обязательный параметр
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError - сущность с указанным id отсутствует
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s %s", e.Entity, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// RangeError - числовое значение вне допустимого диапазона
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func NewRangeError(field string, value, min, max int) *RangeError {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s=%d, expected %d..%d", ErrRange, e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}
