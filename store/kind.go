package store

// Kind identifies one of the two action-item tables. The tables are
// near-identical; resource actions additionally carry an assignee column.
type Kind struct {
	Table       string
	HasAssignee bool
	Label       string
}

var (
	ResourceActions = Kind{Table: "resource_actions", HasAssignee: true, Label: "Resource action"}
	ActivityActions = Kind{Table: "activity_actions", HasAssignee: false, Label: "Activity action"}
)

// updatableColumns is the allow-list for partial updates. Keys outside this
// list are ignored; assignee is skipped for kinds without it.
var updatableColumns = []string{
	"title",
	"description",
	"section",
	"dueDate",
	"assignee",
	"status",
	"completedAt",
}
