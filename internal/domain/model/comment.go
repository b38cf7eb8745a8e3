package model

import "time"

// Comment is the latest general (Issues API) comment on a pull request.
// Only Author and Body take part in classification.
type Comment struct {
	ID        int64
	Author    string
	Body      string
	URL       string
	CreatedAt time.Time
}
