package notice

import "fmt"

type NoticeRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
}

func (r NoticeRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// NoticeUpdateRequest is a partial update; nil fields are left untouched.
type NoticeUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
}

func (r NoticeUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Content != nil {
		updates["content"] = *r.Content
	}
	if r.Priority != nil {
		updates["priority"] = *r.Priority
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}
