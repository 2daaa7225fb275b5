package handler

import (
	"fmt"
	"strings"

	"goalbot/internal/domain"
)

const (
	msgNoGoals         = "Целей не найдено"
	msgNoCategories    = "Категорий не найдено"
	msgEnterTitle      = "Введите название цели"
	msgTitleTooLong    = "Название слишком длинное (максимум 255 символов), введите другое"
	msgCategoryGone    = "Категория больше недоступна, начните заново с /create"
	msgCancelled       = "Операция отменена"
	msgNothingToCancel = "Нечего отменять"
	msgUnknownCommand  = "Неизвестная команда"
	msgCancelHint      = "Для отмены отправьте /cancel"
	msgHelp            = "Доступные команды:\n/goals — список целей\n/create — создать цель\n/cancel — отменить"

	msgFailed = FailureReply
)

// FailureReply is sent when a request could not be completed
const FailureReply = "Не удалось выполнить операцию, попробуйте ещё раз"

func verificationMessage(code string) string {
	return fmt.Sprintf(
		"Подтвердите, пожалуйста, свой аккаунт. Для подтверждения необходимо ввести код: %s на сайте",
		code,
	)
}

func goalsMessage(goals []domain.Goal) string {
	if len(goals) == 0 {
		return msgNoGoals
	}

	titles := make([]string, 0, len(goals))
	for _, g := range goals {
		titles = append(titles, g.Title)
	}
	return strings.Join(titles, "\n")
}

func chooseCategoryMessage(categories []domain.Category) string {
	return "Выберите категорию:\n" + categoryList(categories) + "\n\n" + msgCancelHint
}

func invalidCategoryMessage(categories []domain.Category) string {
	return "Неверная категория, выберите ещё раз:\n" + categoryList(categories) + "\n\n" + msgCancelHint
}

func goalCreatedMessage(goal *domain.Goal) string {
	return fmt.Sprintf("Цель «%s» создана", goal.Title)
}

func categoryList(categories []domain.Category) string {
	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, c.Title)
	}
	return strings.Join(titles, "\n")
}
