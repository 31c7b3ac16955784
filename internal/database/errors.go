package database

import "errors"

var (
	// ErrNotProjectOwner — действие доступно только создателю проекта
	ErrNotProjectOwner = errors.New("user is not the project owner")
	// ErrRequestResolved — заявка уже в терминальном статусе
	ErrRequestResolved = errors.New("request is already resolved")
	// ErrInvalidStatus — допустимы только accepted и rejected
	ErrInvalidStatus = errors.New("invalid request status")
	// ErrDuplicateRequest — заявка для пары (проект, пользователь) уже существует
	ErrDuplicateRequest = errors.New("request already exists")
	// ErrAlreadyMember — пользователь уже состоит в проекте
	ErrAlreadyMember = errors.New("user is already a project member")
)
