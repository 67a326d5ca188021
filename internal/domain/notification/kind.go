package notification

type Kind string

const (
	KindJobRecommendation Kind = "job_recommendation"
	KindFileUpload        Kind = "file_upload"
	KindMessage           Kind = "message"
	KindTaskAssignment    Kind = "task_assignment"
)

// displayOrder is the section order of a digest body and subject.
var displayOrder = []Kind{
	KindJobRecommendation,
	KindMessage,
	KindTaskAssignment,
	KindFileUpload,
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) Valid() bool {
	switch k {
	case KindJobRecommendation, KindFileUpload, KindMessage, KindTaskAssignment:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

func DisplayOrder() []Kind {
	out := make([]Kind, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// countNoun is the subject fragment noun, e.g. "Job" / "Jobs".
func (k Kind) countNoun(n int) string {
	var singular string
	switch k {
	case KindJobRecommendation:
		singular = "Job"
	case KindMessage:
		singular = "Message"
	case KindTaskAssignment:
		singular = "Task"
	case KindFileUpload:
		singular = "Resource"
	default:
		singular = "Update"
	}
	if n == 1 {
		return singular
	}
	return singular + "s"
}

func (k Kind) heading() string {
	switch k {
	case KindJobRecommendation:
		return "Job Recommendations"
	case KindMessage:
		return "Messages"
	case KindTaskAssignment:
		return "Task Assignments"
	case KindFileUpload:
		return "Shared Resources"
	default:
		return "Other Updates"
	}
}
