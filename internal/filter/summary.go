package filter

import "github.com/twiced-technology-gmbh/ttd/internal/task"

// KindCount holds a count for one variant kind.
type KindCount struct {
	Kind    string `json:"kind"`
	Count   int    `json:"count"`
	Ongoing int    `json:"ongoing"`
}

// Overview is the aggregate view of a task list.
type Overview struct {
	Total    int         `json:"total"`
	Kinds    []KindCount `json:"kinds"`
	Ongoing  int         `json:"ongoing"`
	Expired  int         `json:"expired"`
	Upcoming int         `json:"upcoming"`
}

// Summarize counts tasks per kind and per derived status.
func Summarize(tasks []*task.Task) Overview {
	kinds := task.Kinds()
	byKind := make(map[task.Kind]*KindCount, len(kinds))
	for _, k := range kinds {
		byKind[k] = &KindCount{Kind: k.Short()}
	}

	o := Overview{Total: len(tasks)}
	for _, t := range tasks {
		kc := byKind[t.Kind()]
		kc.Count++
		if task.IsOngoing(t.Content) {
			kc.Ongoing++
			o.Ongoing++
		}
		if once, ok := t.Content.(*task.OnceTask); ok {
			switch once.Status {
			case task.Expired:
				o.Expired++
			case task.Upcoming:
				o.Upcoming++
			}
		}
	}

	o.Kinds = make([]KindCount, 0, len(kinds))
	for _, k := range kinds {
		o.Kinds = append(o.Kinds, *byKind[k])
	}
	return o
}
