package list

import (
	"errors"
	"fmt"

	"github.com/Erik-Movsesyan/Singly-Linked-List/pkg"
)

var (
	// ErrInvalidArgument возвращается, если обязательный аргумент равен nil
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState возвращается, если узел принадлежит другому списку или не принадлежит ни одному
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidOperation возвращается при удалении из пустого списка и при чтении
	// значения итератора до начала или после окончания обхода.
	// Является частным случаем ErrInvalidState.
	ErrInvalidOperation = fmt.Errorf("%w: invalid operation", ErrInvalidState)
)

func wrap(funcName string, err error, comment string) error {
	return pkg.NewWrappedError(funcName).Specify(err, comment)
}
