package contest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"codearena/internal/app/notify"
	"codearena/internal/client"
	"codearena/internal/domain/model"
	"codearena/internal/session"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Local submit rejections; none of these reaches the network.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNoActiveQuestion   = errors.New("no question loaded for the active slot")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrNoSubmissionsLeft  = errors.New("no submissions remaining for this question")
	ErrEmptyCode          = errors.New("source code is empty")
)

const (
	msgAccepted    = "All test cases passed!"
	msgWrongAnswer = "Wrong answer. Check the test case details."
	msgRateLimit   = "Submission limit reached for this question!"
)

// API is the slice of the gateway client the controller drives.
type API interface {
	VerifyAuth(ctx context.Context, token string) (*model.AuthVerifyResponse, error)
	GetQuestions(ctx context.Context, teamID string) (*model.ContestSnapshot, error)
	StartTimer(ctx context.Context, teamID string) (*model.StartTimerResponse, error)
	SubmitCode(ctx context.Context, req model.SubmitRequest) (*model.SubmissionResult, error)
}

// Controller ties the session store, the API client, the progression
// state machine and the timer together: mount, refresh, submit,
// dismiss, advance.
type Controller struct {
	api      API
	store    session.Store
	notifier notify.Notifier
	prog     *Progression
	timer    *Timer
	log      zerolog.Logger

	mu         sync.Mutex
	teamID     string
	teamName   string
	snapshot   *model.ContestSnapshot
	result     *model.SubmissionResult
	codeBuffer string
	languageID int
	inFlight   bool
}

func NewController(api API, store session.Store, notifier notify.Notifier, clock clockwork.Clock, maxSubmissions int) *Controller {
	return &Controller{
		api:        api,
		store:      store,
		notifier:   notifier,
		prog:       NewProgression(maxSubmissions),
		timer:      NewTimer(clock),
		languageID: model.DefaultLanguageID,
		log:        log.With().Str("component", "contest").Logger(),
	}
}

// Mount runs the page-load sequence: verify the stored token, fetch the
// first snapshot, initialize the progression and start the contest
// timer. An absent or invalid token clears the session and returns
// ErrNotAuthenticated so the caller can send the user back to signup.
func (c *Controller) Mount(ctx context.Context) error {
	token := c.store.Token()
	teamID := c.store.TeamID()
	if token == "" || teamID == "" {
		c.store.Clear()
		return ErrNotAuthenticated
	}

	verified, err := c.api.VerifyAuth(ctx, token)
	if err != nil || !verified.Valid {
		c.store.Clear()
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	c.teamID = teamID
	c.teamName = c.store.TeamName()
	c.mu.Unlock()

	if err := c.Refresh(ctx); err != nil {
		return err
	}

	// Idempotent on the backend: a second call never resets a running
	// timer. Whatever start instant comes back is authoritative.
	if resp, err := c.api.StartTimer(ctx, teamID); err != nil {
		c.log.Error().Err(err).Msg("start timer failed")
	} else {
		c.timer.Sync(&resp.CPStartTime, nil)
	}
	return nil
}

// Refresh re-fetches the snapshot and syncs progression flags and timer
// state from it. On failure the prior snapshot stays intact.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	teamID := c.teamID
	c.mu.Unlock()
	if teamID == "" {
		return ErrNotAuthenticated
	}

	snap, err := c.api.GetQuestions(ctx, teamID)
	if err != nil {
		c.notifier.Notify(notify.New(notify.LevelError, err.Error()))
		return err
	}

	c.mu.Lock()
	c.snapshot = snap
	c.prog.Initialize(snap) // consumed-once; later refreshes are no-ops
	c.mu.Unlock()

	c.timer.Sync(snap.CPStartTime, snap.CPTimeTaken)
	return nil
}

// Submit dispatches one judged attempt for the active question. All
// local rejections happen before any network call; the in-flight flag
// serializes submissions for the session.
func (c *Controller) Submit(ctx context.Context, code string) (*model.SubmissionResult, error) {
	c.mu.Lock()
	if c.teamID == "" || c.store.Token() == "" {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	question := c.prog.ActiveQuestion(c.snapshot)
	if question == nil {
		c.mu.Unlock()
		return nil, ErrNoActiveQuestion
	}
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if c.prog.SubmissionsRemaining(c.snapshot) <= 0 {
		c.mu.Unlock()
		return nil, ErrNoSubmissionsLeft
	}
	if strings.TrimSpace(code) == "" {
		c.mu.Unlock()
		return nil, ErrEmptyCode
	}
	c.inFlight = true
	c.codeBuffer = code
	teamID := c.teamID
	languageID := c.languageID
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	result, err := c.api.SubmitCode(ctx, model.SubmitRequest{
		TeamID:     teamID,
		QuestionID: question.ID,
		LanguageID: languageID,
		SourceCode: code,
	})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusTooManyRequests {
			c.notifier.Notify(notify.New(notify.LevelError, msgRateLimit))
		} else {
			c.notifier.Notify(notify.New(notify.LevelError, err.Error()))
		}
		return nil, err
	}

	c.mu.Lock()
	c.result = result
	c.mu.Unlock()

	switch result.Status {
	case model.StatusAccepted:
		c.notifier.Notify(notify.New(notify.LevelSuccess, msgAccepted))
	case model.StatusPartial:
		c.notifier.Notify(notify.New(notify.LevelWarning,
			fmt.Sprintf("Passed %d/%d test cases", result.PassedTestcases, result.TotalTestcases)))
	default:
		c.notifier.Notify(notify.New(notify.LevelError, msgWrongAnswer))
	}
	return result, nil
}

// DismissResult closes the held submission result, advances the active
// slot when the result finished the easy question, and re-fetches the
// snapshot so scores are current.
func (c *Controller) DismissResult(ctx context.Context) error {
	c.mu.Lock()
	result := c.result
	c.result = nil
	if c.prog.ResolveDismiss(c.snapshot, result) {
		c.codeBuffer = ""
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// AdvanceToMedium is the explicit advance action. The transition itself
// is unconditional and one-way; CanAdvance gates whether the UI offers it.
func (c *Controller) AdvanceToMedium(ctx context.Context) error {
	c.mu.Lock()
	if c.prog.Advance() {
		c.codeBuffer = ""
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// CanAdvance reports whether the advance action should be offered for
// the currently held result.
func (c *Controller) CanAdvance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog.CanAdvance(c.snapshot, c.result)
}

func (c *Controller) Snapshot() *model.ContestSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

func (c *Controller) Result() *model.SubmissionResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

func (c *Controller) ActiveSlot() Slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog.Active()
}

func (c *Controller) ActiveQuestion() *model.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog.ActiveQuestion(c.snapshot)
}

func (c *Controller) SubmissionsRemaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog.SubmissionsRemaining(c.snapshot)
}

func (c *Controller) EasyDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog.EasyDone(c.snapshot)
}

func (c *Controller) MediumDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog.MediumDone(c.snapshot)
}

func (c *Controller) ContestComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog.ContestComplete(c.snapshot)
}

func (c *Controller) Code() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.codeBuffer
}

func (c *Controller) SetCode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codeBuffer = code
}

func (c *Controller) LanguageID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.languageID
}

// SetLanguage rejects ids that are not in the execution catalog.
func (c *Controller) SetLanguage(id int) error {
	if !model.ValidLanguage(id) {
		return fmt.Errorf("unknown language id %d", id)
	}
	c.mu.Lock()
	c.languageID = id
	c.mu.Unlock()
	return nil
}

func (c *Controller) TeamName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.teamName
}

func (c *Controller) Timer() *Timer { return c.timer }
