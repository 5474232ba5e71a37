package engine

import "fmt"

// Stage 流水线阶段
type Stage int

const (
	StageValidateConfig Stage = iota
	StageResolveDate
	StageAggregate
	StageGenerate
	StageDispatch
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageValidateConfig:
		return "ValidateConfig"
	case StageResolveDate:
		return "ResolveDate"
	case StageAggregate:
		return "Aggregate"
	case StageGenerate:
		return "Generate"
	case StageDispatch:
		return "Dispatch"
	case StageDone:
		return "Done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// StageError 记录流程终止时所在的阶段
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
