package scaffold

import "fmt"

// Action classifies what a run would do with an entry's file.
type Action string

const (
	ActionCreate Action = "create"
	ActionExists Action = "exists"
)

// Step is the read-only classification of one entry.
type Step struct {
	Entry      Entry
	Dir        string
	File       string
	DirMissing bool
	Action     Action
}

// Plan reports what Run would do for each entry without touching the
// filesystem. A directory shared by several entries is reported missing only
// on the first of them.
func Plan(root string, entries []Entry) ([]Step, error) {
	s := &Scaffolder{root: root}
	pending := make(map[string]bool)
	steps := make([]Step, 0, len(entries))
	for _, entry := range entries {
		dir, file := entry.Split()
		step := Step{Entry: entry, Dir: dir, File: file, Action: ActionExists}

		if dir != "" {
			exists, err := dirExists(s.abs(dir))
			if err != nil {
				return nil, fmt.Errorf("scaffold: inspect directory %s: %w", dir, err)
			}
			if !exists && !pending[dir] {
				step.DirMissing = true
				markPending(pending, dir)
			}
		}

		empty, err := missingOrEmpty(s.abs(string(entry)))
		if err != nil {
			return nil, fmt.Errorf("scaffold: inspect %s: %w", entry, err)
		}
		if empty {
			step.Action = ActionCreate
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// markPending records dir and its ancestors as created by an earlier step.
func markPending(pending map[string]bool, dir string) {
	for dir != "" {
		pending[dir] = true
		parent, _ := Entry(dir).Split()
		dir = parent
	}
}
