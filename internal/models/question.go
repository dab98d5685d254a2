package models

type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// FormattedQuestion is the wire shape of a question.
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (q Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []FormattedQuestion {
	out := make([]FormattedQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}
