package model

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&Project{},
		&Task{},
		&TaskDependency{},
		&ProjectCost{},
		&Resource{},
		&ResourceAssignment{},
		&ProjectMetricsSnapshot{},
		&ProjectTemplate{},
		&TemplateTask{},
		&TemplateDependency{},
	}
}
