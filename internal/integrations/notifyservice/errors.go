package notifyservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис уведомлений недоступен; бронирование при этом
	// считается успешным, уведомление просто не отправлено
	ErrServiceDegraded = errors.New("notifyservice unavailable: graceful degradation applied")
)
