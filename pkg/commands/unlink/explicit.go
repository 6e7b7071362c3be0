package unlink

import (
	"context"

	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/symlink"
)

// unlinkExplicit detaches every matching package from its direct
// consumers, then drops its global registration. Each consumer failure
// is logged and skipped so one stuck slot never blocks the rest, and a
// failed deregistration still counts the package as unlinked: removing
// a link that is not there is the outcome the operator asked for.
func unlinkExplicit(ctx context.Context, env *internal.Env, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.unlink")
	result := &Result{Mode: "explicit", DryRun: opts.DryRun}

	sel, err := internal.SelectTargets(env, opts.Argument)
	if err != nil {
		return nil, err
	}

	reconciler := symlink.NewReconciler(env.FS, opts.DryRun)
	var unlinked []string

	for _, target := range sel.Targets {
		source := target.Package
		logger.Info().
			Str("package", source.Name).
			Int("consumers", len(target.Consumers)).
			Msg("Unlinking package from consumers")

		pkgResult := PackageResult{Name: source.Name, Directory: source.Dir}
		for _, consumer := range target.Consumers {
			outcome, err := reconciler.Remove(consumer.Dir, source.Name)
			if err != nil {
				logger.Warn().Err(err).
					Str("consumer", consumer.Name).
					Str("package", source.Name).
					Msg("Failed to unlink consumer, continuing")
				pkgResult.Failures = append(pkgResult.Failures, consumer.Name)
				continue
			}
			if outcome.Action != symlink.ActionAbsent {
				pkgResult.Consumers = append(pkgResult.Consumers, consumer.Name)
			}
		}

		if opts.DryRun {
			logger.Info().Str("package", source.Name).Msg("Dry run, skipping global deregistration")
		} else if err := env.Client.Deregister(ctx, source.Dir, source.Name); err != nil {
			logger.Warn().Err(err).Str("package", source.Name).Msg("Global deregistration failed, continuing")
		}

		result.Packages = append(result.Packages, pkgResult)
		unlinked = append(unlinked, source.Name)
	}

	result.Success = true
	if opts.DryRun {
		result.Message = internal.PlannedSummary("unlink", unlinked)
	} else {
		result.Message = internal.SuccessSummary("unlinked", unlinked)
	}

	logger.Info().Int("packages", len(unlinked)).Msg("Unlink command finished")
	return result, nil
}
