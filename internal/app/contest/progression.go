package contest

import "codearena/internal/domain/model"

// Slot identifies which problem pane is active.
type Slot string

const (
	SlotEasy   Slot = "easy"
	SlotMedium Slot = "medium"
)

// FullScore marks a question as solved. The backend enforces the same
// threshold; the snapshot fields remain the source of truth.
const FullScore = 100

// Progression decides which problem is active. One instance per
// session: the one-time initialization jump is a consumed-once tag on
// the object, and the easy->medium transition is one-way.
type Progression struct {
	maxSubmissions int
	active         Slot
	initialized    bool
}

func NewProgression(maxSubmissions int) *Progression {
	return &Progression{
		maxSubmissions: maxSubmissions,
		active:         SlotEasy,
	}
}

func (p *Progression) Active() Slot { return p.active }

func (p *Progression) Initialized() bool { return p.initialized }

// Initialize consumes the one-shot tag on the first snapshot: a team
// resuming mid-contest with easy finished (or exhausted) and a medium
// question assigned lands directly on medium. Later calls are no-ops,
// so re-fetches never re-fire the jump.
func (p *Progression) Initialize(snap *model.ContestSnapshot) {
	if p.initialized || snap == nil {
		return
	}
	p.initialized = true
	if p.EasyDone(snap) && snap.MediumQuestion != nil {
		p.active = SlotMedium
	}
}

// EasyDone, MediumDone and ContestComplete are recomputed from the
// snapshot on every call; none of them is stored.

func (p *Progression) EasyDone(snap *model.ContestSnapshot) bool {
	if snap == nil {
		return false
	}
	return snap.EasyScore >= FullScore || snap.EasySubmissionCount >= p.maxSubmissions
}

func (p *Progression) MediumDone(snap *model.ContestSnapshot) bool {
	if snap == nil || snap.MediumQuestion == nil {
		return false
	}
	return snap.MediumScore >= FullScore || snap.MediumSubmissionCount >= p.maxSubmissions
}

func (p *Progression) ContestComplete(snap *model.ContestSnapshot) bool {
	return p.EasyDone(snap) && p.MediumDone(snap)
}

// CanAdvance reports whether the explicit advance action may be offered:
// easy is active, the last result finished the easy slot (accepted or
// quota exhausted) and a medium question exists.
func (p *Progression) CanAdvance(snap *model.ContestSnapshot, result *model.SubmissionResult) bool {
	if p.active != SlotEasy || snap == nil || snap.MediumQuestion == nil || result == nil {
		return false
	}
	return result.Status == model.StatusAccepted || result.SubmissionsRemaining == 0
}

// ResolveDismiss applies the transition taken when a submission result
// is dismissed. Reports whether the active slot advanced, in which case
// the caller must clear the in-progress code buffer.
func (p *Progression) ResolveDismiss(snap *model.ContestSnapshot, result *model.SubmissionResult) bool {
	if !p.CanAdvance(snap, result) {
		return false
	}
	p.active = SlotMedium
	return true
}

// Advance is the explicit advance action. It transitions easy->medium
// unconditionally; there is no path back.
func (p *Progression) Advance() bool {
	if p.active != SlotEasy {
		return false
	}
	p.active = SlotMedium
	return true
}

// ActiveQuestion returns the question loaded for the active slot, if any.
func (p *Progression) ActiveQuestion(snap *model.ContestSnapshot) *model.Question {
	if snap == nil {
		return nil
	}
	if p.active == SlotMedium {
		return snap.MediumQuestion
	}
	return snap.EasyQuestion
}

// SubmissionsRemaining is the quota left for the active slot.
func (p *Progression) SubmissionsRemaining(snap *model.ContestSnapshot) int {
	if snap == nil {
		return 0
	}
	count := snap.EasySubmissionCount
	if p.active == SlotMedium {
		count = snap.MediumSubmissionCount
	}
	remaining := p.maxSubmissions - count
	if remaining < 0 {
		return 0
	}
	return remaining
}
