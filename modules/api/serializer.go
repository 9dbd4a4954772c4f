package api

import (
	"fmt"
	"time"

	"github.com/example/tasks-api/modules/task"
)

// toTaskResource projects a task onto its wire representation. It is a pure
// mapping: given a valid task it cannot fail.
func toTaskResource(t *task.TaskData) TaskResource {
	resource := TaskResource{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.UTC().Format(time.RFC3339)
		resource.DueDate = &due
	}
	return resource
}

// newTaskPage assembles the list payload: serialized rows, navigation links,
// and pagination metadata.
func newTaskPage(baseURL string, resp *task.ListTasksResponse) TaskPage {
	data := make([]TaskResource, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		data = append(data, toTaskResource(&resp.Tasks[i]))
	}

	pageURL := func(page int) string {
		return fmt.Sprintf("%s?page=%d&per_page=%d", baseURL, page, resp.PerPage)
	}

	links := PageLinks{
		First: pageURL(1),
		Last:  pageURL(resp.LastPage),
	}
	if resp.CurrentPage > 1 {
		prev := pageURL(resp.CurrentPage - 1)
		links.Prev = &prev
	}
	if resp.CurrentPage < resp.LastPage {
		next := pageURL(resp.CurrentPage + 1)
		links.Next = &next
	}

	return TaskPage{
		Data:  data,
		Links: links,
		Meta: PageMeta{
			CurrentPage: resp.CurrentPage,
			LastPage:    resp.LastPage,
			PerPage:     resp.PerPage,
			Total:       resp.Total,
		},
	}
}
