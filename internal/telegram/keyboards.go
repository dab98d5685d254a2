package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	callbackCategoryPrefix = "cat:"
	callbackAllCategories  = "cat:all"
	callbackShowAnswer     = "ans"
	callbackNext           = "next"
	callbackStop           = "stop"
)

// CategoryKeyboard lists "All" first, then one button per category with the
// zero-based category index as payload.
func CategoryKeyboard(labels []string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 All", callbackAllCategories),
		),
	}

	var row []tgbotapi.InlineKeyboardButton
	for i, label := range labels {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", callbackCategoryPrefix, i)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func QuestionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👁 Show answer", callbackShowAnswer),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", callbackStop),
		),
	)
}

func RevealedKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next", callbackNext),
			tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", callbackStop),
		),
	)
}

// parseCategoryCallback decodes a category button payload. all is true for
// the "All" button.
func parseCategoryCallback(data string) (index int, all bool, ok bool) {
	if data == callbackAllCategories {
		return 0, true, true
	}
	raw, found := strings.CutPrefix(data, callbackCategoryPrefix)
	if !found {
		return 0, false, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, false, false
	}
	return index, false, true
}
