package summary

type Status string

const (
	// StatusOK means the payload was normalized successfully.
	StatusOK Status = "ok"
	// StatusEmpty means the upstream explicitly reported no match data.
	// Absence is a normal state, not an error.
	StatusEmpty Status = "empty"
	// StatusInvalid means required fields were missing from the payload.
	// Callers must treat this as "no data available", never as a failure
	// requiring retry escalation.
	StatusInvalid Status = "invalid"
)

type Result struct {
	Status  Status
	Summary *MatchSummary
}

func Ok(s MatchSummary) Result {
	return Result{Status: StatusOK, Summary: &s}
}

func Empty() Result {
	return Result{Status: StatusEmpty}
}

func Invalid() Result {
	return Result{Status: StatusInvalid}
}
