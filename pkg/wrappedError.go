package pkg

import (
	"fmt"
	"io"
	"log"
	"time"
)

const (
	errorTag   = "[ERROR]"
	messageTag = "(msg)"
)

// WrappedError представляет собой структуру для обертывания ошибки и записи ее в логи.
// Реализует интерфейс error, а также Unwrap для работы с errors.Is и errors.As.
// Дополнительно реализует функционал вывода сообщений (не ошибок) в логи.
type WrappedError struct {
	functionName string    // Имя функции (где произошла ошибка?)
	comment      string    // Комментарий к ошибке (что именно вызвало ошибку?)
	err          error     // Ошибка, которая будет обернута
	timestamp    string    // Время последнего обновления ошибки методом Specify()
	output       io.Writer // Дополнительный приемник логов, может быть nil
}

// NewWrappedError создает новый экземпляр WrappedError с именем функции, но без комментария.
// То есть уже известно, где ошибка может произойти, но что именно за ошибка еще неизвестно.
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName, timestamp: "[]"}
}

// WithOutput задает дополнительный приемник, в который дублируются записи LogError и LogMsg.
func (e *WrappedError) WithOutput(w io.Writer) *WrappedError {
	e.output = w
	return e
}

// Specify обновляет экземпляр, если переданная ошибка не nil. Перезаписываются err и comment.
// То есть уже известно, что это за ошибка. Функция, в которой появляется ошибка, указывается при создании.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
		e.timestamp = fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	}
	return e
}

// Error возвращает строковое представление ошибки с комментарием и именем функции.
func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

// Unwrap возвращает обернутую ошибку
func (e *WrappedError) Unwrap() error {
	return e.err
}

// FunctionName возвращает имя функции, в которой произошла ошибка
func (e *WrappedError) FunctionName() string {
	return e.functionName
}

// LogError выводит ошибку в стандартный логгер и дублирует ее в дополнительный приемник (если он задан).
// Если ошибки нет, то ничего не делает.
func (e *WrappedError) LogError() {
	if e.err == nil {
		return
	}
	log.Println(e.timestamp, errorTag, e.Error())
	e.writeOutput(e.timestamp, errorTag, e.Error())
}

// LogMsg выводит сообщение в стандартный логгер и дублирует его в дополнительный приемник (если он задан).
// Это сообщение не является ошибкой.
func (e *WrappedError) LogMsg(msg string) {
	msgTimestamp := fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	text := fmt.Sprintf("'%s' from function '%s'", msg, e.functionName)
	log.Println(msgTimestamp, messageTag, text)
	e.writeOutput(msgTimestamp, messageTag, text)
}

func (e *WrappedError) writeOutput(args ...any) {
	if e.output == nil {
		return
	}
	if _, writeError := fmt.Fprintln(e.output, args...); writeError != nil {
		log.Println("Failed to write log into output:", writeError)
	}
}
