package cascade

import (
	"context"

	"resourcebooking/models"

	"go.uber.org/zap"
)

// StepResult records what one step of a cascade did.
type StepResult struct {
	Name    string
	Changed bool
	Err     error
}

// Report describes a cascade run. Outcome is the result of the final
// mutation on the parent entity.
type Report struct {
	Operation string
	TargetID  string
	Steps     []StepResult
	Outcome   models.Outcome
}

// Failed lists the steps that returned an error.
func (r Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

type step struct {
	name string
	run  func(ctx context.Context) (bool, error)
}

// runSideEffects executes steps in order. A failing step is logged and the
// run moves on; nothing is rolled back.
func runSideEffects(ctx context.Context, logger *zap.Logger, report *Report, steps []step) {
	for _, st := range steps {
		changed, err := st.run(ctx)
		report.Steps = append(report.Steps, StepResult{Name: st.name, Changed: changed, Err: err})
		if err != nil {
			logger.Warn("Cascade step failed",
				zap.String("operation", report.Operation),
				zap.String("targetID", report.TargetID),
				zap.String("step", st.name),
				zap.Error(err))
		}
	}
}

func logReport(logger *zap.Logger, report Report) {
	fields := []zap.Field{
		zap.String("operation", report.Operation),
		zap.String("targetID", report.TargetID),
		zap.Stringer("outcome", report.Outcome),
		zap.Int("failedSteps", len(report.Failed())),
	}
	for _, s := range report.Steps {
		fields = append(fields, zap.Bool(s.Name, s.Changed))
	}
	logger.Info("Cascade finished", fields...)
}
