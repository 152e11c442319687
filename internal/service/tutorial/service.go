package tutorial

import (
	"strings"
	"sync"
)

// Step is one stop of the guided tour: the UI element it points at, the
// copy to show, and where the tooltip sits.
type Step struct {
	ID       string `json:"id"`
	Target   string `json:"target"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position string `json:"position"`
}

// State is the sequencer position plus the view the frontend should show
// for the current step.
type State struct {
	Active    bool   `json:"active"`
	StepIndex int    `json:"stepIndex"`
	Step      *Step  `json:"step,omitempty"`
	ActiveTab string `json:"activeTab"`
}

// Service walks a fixed ordered step list: inactive, or active at an
// index. Next past the last step deactivates; Prev floors at the first.
// Completely decoupled from business data.
type Service interface {
	Steps() []Step
	Current() State
	Start() State
	Next() State
	Prev() State
	End() State
}

type service struct {
	mu     sync.Mutex
	steps  []Step
	active bool
	index  int
}

func NewService() Service {
	return &service{steps: tourSteps()}
}

// Tab destinations by step id fragment. Steps whose id carries none of
// these fragments stay on the dashboard.
var tabByFragment = []struct {
	fragment string
	tab      string
}{
	{"campaigns", "campaigns"},
	{"funnel", "funnel"},
	{"calendar", "calendar"},
	{"chat", "chat"},
}

func tabFor(stepID string) string {
	for _, entry := range tabByFragment {
		if strings.Contains(stepID, entry.fragment) {
			return entry.tab
		}
	}
	return "dashboard"
}

func (s *service) Steps() []Step {
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)
	return steps
}

func (s *service) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *service) Start() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = true
	s.index = 0
	return s.state()
}

func (s *service) Next() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return s.state()
	}
	if s.index+1 >= len(s.steps) {
		s.active = false
		s.index = 0
		return s.state()
	}
	s.index++
	return s.state()
}

func (s *service) Prev() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && s.index > 0 {
		s.index--
	}
	return s.state()
}

func (s *service) End() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = false
	s.index = 0
	return s.state()
}

func (s *service) state() State {
	if !s.active {
		return State{Active: false, StepIndex: 0, ActiveTab: "dashboard"}
	}
	step := s.steps[s.index]
	return State{
		Active:    true,
		StepIndex: s.index,
		Step:      &step,
		ActiveTab: tabFor(step.ID),
	}
}
