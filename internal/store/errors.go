package store

import "errors"

// Типизированные ошибки хранилища. Обработчики сопоставляют их
// со статусами HTTP через errors.Is.
var (
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrItemNotFound    = errors.New("вещь не найдена")
	ErrSwapNotFound    = errors.New("заявка на обмен не найдена")
	ErrMessageNotFound = errors.New("сообщение не найдено")

	ErrEmailTaken    = errors.New("пользователь с таким email уже существует")
	ErrEmptyField    = errors.New("не заполнено обязательное поле")
	ErrInvalidAmount = errors.New("недопустимая сумма баллов")
	ErrInvalidTxType = errors.New("неизвестный тип операции с баллами")

	ErrNotItemOwner       = errors.New("вещь принадлежит другому пользователю")
	ErrOwnItem            = errors.New("нельзя обменять собственную вещь")
	ErrItemUnavailable    = errors.New("вещь недоступна для обмена")
	ErrDuplicateRequest   = errors.New("такая заявка на обмен уже существует")
	ErrInvalidTransition  = errors.New("недопустимый переход статуса заявки")
	ErrInsufficientPoints = errors.New("недостаточно баллов")
	ErrSelfMessage        = errors.New("нельзя отправить сообщение самому себе")
)
