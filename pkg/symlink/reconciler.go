// Package symlink reconciles dependency slots against desired link
// targets. A slot is the module-resolution path for one dependency
// inside one consumer (node_modules/<name>); reconciliation classifies
// what currently occupies the slot and converges it on a symlink to
// the dependency's source directory.
package symlink

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/scopelink/scopelink/pkg/errors"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/paths"
	"github.com/scopelink/scopelink/pkg/types"
)

// State classifies what occupies a dependency slot before reconciling
type State string

const (
	// StateAbsent means nothing occupies the slot
	StateAbsent State = "absent"

	// StateCorrect means a symlink already resolves to the desired target
	StateCorrect State = "correct"

	// StateStale means a symlink occupies the slot but resolves elsewhere
	StateStale State = "stale"

	// StateOccupiedDir means a real directory occupies the slot,
	// usually an installed copy of the dependency
	StateOccupiedDir State = "occupied-dir"

	// StateOccupiedFile means a regular file occupies the slot
	StateOccupiedFile State = "occupied-file"
)

// Action names what reconciliation did (or would do under dry-run)
type Action string

const (
	ActionCreated      Action = "created"
	ActionUpToDate     Action = "up-to-date"
	ActionRepaired     Action = "repaired"
	ActionReplacedDir  Action = "replaced-dir"
	ActionReplacedFile Action = "replaced-file"
	ActionRemoved      Action = "removed"
	ActionAbsent       Action = "absent"

	ActionWouldCreate      Action = "would-create"
	ActionWouldRepair      Action = "would-repair"
	ActionWouldReplaceDir  Action = "would-replace-dir"
	ActionWouldReplaceFile Action = "would-replace-file"
	ActionWouldRemove      Action = "would-remove"
)

// Outcome describes one reconciled slot
type Outcome struct {
	// Slot is the dependency's module-resolution path
	Slot string `json:"slot"`

	// Target is the link target as stored (Ensure) or as found (Remove)
	Target string `json:"target,omitempty"`

	// State is the classification before any action was taken
	State State `json:"state"`

	// Action is what was done to converge the slot
	Action Action `json:"action"`
}

// Reconciler converges dependency slots on symlinks
type Reconciler struct {
	fs     types.FS
	logger zerolog.Logger
	dryRun bool
}

// NewReconciler creates a reconciler. With dryRun set, Ensure and
// Remove only report what they would do.
func NewReconciler(fsys types.FS, dryRun bool) *Reconciler {
	return &Reconciler{
		fs:     fsys,
		logger: logging.GetLogger("symlink.reconciler"),
		dryRun: dryRun,
	}
}

// RelativeTarget computes the target string stored in a slot's
// symlink: relative to the slot's parent directory, so links survive
// the workspace moving as a whole. Falls back to the absolute source
// when no relative path exists.
func RelativeTarget(slot, sourceDir string) string {
	rel, err := filepath.Rel(filepath.Dir(slot), sourceDir)
	if err != nil {
		return sourceDir
	}
	return rel
}

// Resolve resolves a stored link target against the slot's location
// to a cleaned absolute path
func Resolve(slot, stored string) string {
	if filepath.IsAbs(stored) {
		return filepath.Clean(stored)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(slot), stored))
}

// Ensure converges the slot for depName inside consumerDir on a
// symlink to sourceDir. Occupied slots are replaced; replacement is a
// success with a warning, not an error.
func (r *Reconciler) Ensure(consumerDir, depName, sourceDir string) (Outcome, error) {
	slot := paths.DependencySlot(consumerDir, depName)
	want := RelativeTarget(slot, sourceDir)
	outcome := Outcome{Slot: slot, Target: want}

	state, stored, err := r.classify(slot, want)
	if err != nil {
		return outcome, err
	}
	outcome.State = state

	logger := r.logger.With().
		Str("dependency", depName).
		Str("slot", slot).
		Str("target", want).
		Logger()

	switch state {
	case StateCorrect:
		outcome.Action = ActionUpToDate
		logger.Debug().Msg("Slot already links to target")
		return outcome, nil

	case StateAbsent:
		if r.dryRun {
			outcome.Action = ActionWouldCreate
			return outcome, nil
		}
		if err := r.createLink(slot, want); err != nil {
			return outcome, err
		}
		outcome.Action = ActionCreated
		logger.Info().Msg("Linked dependency")
		return outcome, nil

	case StateStale:
		if r.dryRun {
			outcome.Action = ActionWouldRepair
			return outcome, nil
		}
		if err := r.fs.Remove(slot); err != nil {
			return outcome, errors.Wrap(err, errors.ErrFileAccess,
				"cannot remove stale link").WithDetail("slot", slot)
		}
		if err := r.createLink(slot, want); err != nil {
			return outcome, err
		}
		outcome.Action = ActionRepaired
		logger.Info().Str("previous", stored).Msg("Repaired stale link")
		return outcome, nil

	case StateOccupiedDir:
		if r.dryRun {
			outcome.Action = ActionWouldReplaceDir
			return outcome, nil
		}
		logger.Warn().Msg("Replacing installed directory with link")
		if err := r.fs.RemoveAll(slot); err != nil {
			return outcome, errors.Wrap(err, errors.ErrFileAccess,
				"cannot remove installed directory").WithDetail("slot", slot)
		}
		if err := r.createLink(slot, want); err != nil {
			return outcome, err
		}
		outcome.Action = ActionReplacedDir
		return outcome, nil

	case StateOccupiedFile:
		if r.dryRun {
			outcome.Action = ActionWouldReplaceFile
			return outcome, nil
		}
		logger.Warn().Msg("Replacing regular file with link")
		if err := r.fs.Remove(slot); err != nil {
			return outcome, errors.Wrap(err, errors.ErrFileAccess,
				"cannot remove occupying file").WithDetail("slot", slot)
		}
		if err := r.createLink(slot, want); err != nil {
			return outcome, err
		}
		outcome.Action = ActionReplacedFile
		return outcome, nil
	}

	return outcome, errors.Newf(errors.ErrInternal, "unhandled slot state: %s", state)
}

// Remove unlinks the slot for depName inside consumerDir. An absent
// slot is a no-op; a slot occupied by anything other than a symlink is
// left alone and reported as SLOT_OCCUPIED.
func (r *Reconciler) Remove(consumerDir, depName string) (Outcome, error) {
	slot := paths.DependencySlot(consumerDir, depName)
	outcome := Outcome{Slot: slot}

	state, stored, err := r.classify(slot, "")
	if err != nil {
		return outcome, err
	}
	outcome.State = state

	logger := r.logger.With().
		Str("dependency", depName).
		Str("slot", slot).
		Logger()

	switch state {
	case StateAbsent:
		outcome.Action = ActionAbsent
		logger.Debug().Msg("Slot already absent")
		return outcome, nil

	case StateOccupiedDir, StateOccupiedFile:
		return outcome, errors.New(errors.ErrSlotOccupied,
			"slot is not a symlink").
			WithDetail("slot", slot).
			WithDetail("state", string(state))
	}

	outcome.Target = stored
	if r.dryRun {
		outcome.Action = ActionWouldRemove
		return outcome, nil
	}

	if err := r.fs.Remove(slot); err != nil {
		return outcome, errors.Wrap(err, errors.ErrFileAccess,
			"cannot remove link").WithDetail("slot", slot)
	}
	outcome.Action = ActionRemoved
	logger.Info().Str("target", stored).Msg("Unlinked dependency")
	return outcome, nil
}

// classify inspects the slot and, when it holds a symlink, returns
// the stored target. want is the desired stored target; with want
// empty every symlink classifies as stale.
func (r *Reconciler) classify(slot, want string) (State, string, error) {
	info, err := r.fs.Lstat(slot)
	if err != nil {
		if os.IsNotExist(err) {
			return StateAbsent, "", nil
		}
		return "", "", errors.Wrap(err, errors.ErrFileAccess,
			"cannot inspect slot").WithDetail("slot", slot)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		if info.IsDir() {
			return StateOccupiedDir, "", nil
		}
		return StateOccupiedFile, "", nil
	}

	stored, err := r.fs.Readlink(slot)
	if err != nil {
		return "", "", errors.Wrap(err, errors.ErrFileAccess,
			"cannot read link target").WithDetail("slot", slot)
	}

	if want != "" && Resolve(slot, stored) == Resolve(slot, want) {
		return StateCorrect, stored, nil
	}
	return StateStale, stored, nil
}

// createLink creates the parent directory chain and the symlink itself
func (r *Reconciler) createLink(slot, target string) error {
	if err := r.fs.MkdirAll(filepath.Dir(slot), 0755); err != nil {
		return errors.Wrap(err, errors.ErrSymlinkCreate,
			"cannot create slot parent directory").WithDetail("slot", slot)
	}
	if err := r.fs.Symlink(target, slot); err != nil {
		return errors.Wrap(err, errors.ErrSymlinkCreate,
			"cannot create link").
			WithDetail("slot", slot).
			WithDetail("target", target)
	}
	return nil
}
