package timestamps

// StepIdx counts steps of a multi-step process.
type StepIdx struct {
	current int
}

func NewStepIdx(start int) *StepIdx {
	return &StepIdx{current: start}
}

func (s *StepIdx) Step() { s.current++ }

func (s *StepIdx) Current() int { return s.current }

// Previous returns the index before the current one.
func (s *StepIdx) Previous() (int, error) {
	if s.current == 0 {
		return 0, ErrNoPrevious
	}
	return s.current - 1, nil
}

func (s *StepIdx) Next() int { return s.current + 1 }
