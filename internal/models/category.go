package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

// Labels returns category labels in the given order.
func Labels(categories []Category) []string {
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Type)
	}
	return labels
}
