package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g. postgres). Repositories
// run SQL only; entitlement and lifecycle rules stay in the service
// layer.

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
