package camunda

import (
	"sort"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// MergeTaskData flattens the tasks of the first process instance into a
// single list: the direct tasks plus the tasks of every sub-process,
// newest first. Only the first instance counts; a case runs one main
// process and later instances are stale duplicates.
func MergeTaskData(processes []model.KetenProces) []model.Task {
	if len(processes) == 0 {
		return nil
	}
	proces := processes[0]

	merged := make([]model.Task, 0, len(proces.Tasks))
	merged = append(merged, proces.Tasks...)
	merged = append(merged, subProcessTasks(proces.SubProcesses)...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Created.After(merged[j].Created)
	})
	return merged
}

func subProcessTasks(subs []model.SubProcess) []model.Task {
	var tasks []model.Task
	for _, sub := range subs {
		tasks = append(tasks, sub.Tasks...)
		tasks = append(tasks, subProcessTasks(sub.SubProcesses)...)
	}
	return tasks
}

// FindNewTask returns the first merged task whose ID was absent from
// the previous snapshot, or nil when nothing materialized. Used by the
// polling loop to auto-open tasks that appear after an action.
func FindNewTask(current []model.Task, previous []model.Task) *model.Task {
	seen := make(map[string]bool, len(previous))
	for _, task := range previous {
		seen[task.ID] = true
	}
	for i := range current {
		if !seen[current[i].ID] {
			return &current[i]
		}
	}
	return nil
}
