package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories"
)

// Clock returns the instant a run is stamped with.
type Clock func() time.Time

// Stamp is the interface for the stamp command (manifest mutation mode).
type Stamp interface {
	Execute(ctx context.Context, settings *entities.Settings, opts StampOptions) (*entities.RunReport, error)
}

// StampOptions holds runtime options for a single run.
type StampOptions struct {
	DryRun bool // patch in memory only: no file writes and no host side effects
}

// StampCommand orchestrates the full stamping flow:
// discover files -> classify -> decode -> patch -> encode -> write -> publish.
type StampCommand struct {
	finder          repositories.FileFinderRepository
	codec           repositories.CodecRepository
	store           repositories.FileStoreRepository
	patcherRegistry *infraRepos.PatcherRegistry
	hostRegistry    *infraRepos.HostRegistry
	clock           Clock
}

// NewStampCommand creates a new StampCommand with the given repositories.
func NewStampCommand(
	finder repositories.FileFinderRepository,
	codec repositories.CodecRepository,
	store repositories.FileStoreRepository,
	patcherRegistry *infraRepos.PatcherRegistry,
	hostRegistry *infraRepos.HostRegistry,
	clock Clock,
) *StampCommand {
	return &StampCommand{
		finder:          finder,
		codec:           codec,
		store:           store,
		patcherRegistry: patcherRegistry,
		hostRegistry:    hostRegistry,
		clock:           clock,
	}
}

// Execute stamps every matching file below settings.Path. The returned error is
// reserved for fatal conditions; file-local problems are collected in the report.
func (it *StampCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts StampOptions,
) (*entities.RunReport, error) {
	info, err := it.store.Stat(settings.Path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", entities.ErrSourceDirNotFound, settings.Path)
	}

	host, err := it.hostRegistry.Resolve(settings.Host)
	if err != nil {
		return nil, err
	}

	config := entities.NewRunConfig(settings, it.clock())
	report := entities.NewRunReport(config.FailOnWarning)
	logParameters(config, host)

	files, err := it.finder.Find(config.RootPath, config.FileNames)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file names: %w", err)
	}
	if len(files) == 0 {
		report.AddWarning(fmt.Sprintf("No files found matching %s", strings.Join(config.FileNames, ", ")))
	}

	changes := make(map[entities.FieldKey]string)
	for _, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		status, fileChanges, fileErr := it.processFile(file, config, report, opts)
		report.RecordFile(file, status, fileErr)
		for _, change := range fileChanges {
			changes[change.Key] = change.Value
		}
	}

	resolveVersions(config, changes, report)
	if opts.DryRun {
		logger.Info("Dry run: no files were written and nothing was published")
		return report, nil
	}

	publishVariables(host, config, report)
	applyBuildEffects(host, config, report)

	return report, nil
}

// processFile runs the per-file state machine. Errors are recorded in the
// report and returned so they end up in the file outcome as well.
func (it *StampCommand) processFile(
	path string,
	config *entities.RunConfig,
	report *entities.RunReport,
	opts StampOptions,
) (entities.FileStatus, []entities.FieldChange, error) {
	logger.Infof("Processing: %s", path)

	target := entities.NewManifestTarget(path)
	patcher := it.patcherRegistry.ForKind(target.Kind)
	if patcher == nil {
		report.AddWarning(fmt.Sprintf("Unsupported file extension, skipping: %s", path))
		return entities.FileSkipped, nil, entities.ErrUnsupportedFileKind
	}

	if _, err := it.store.Stat(path); err != nil {
		return it.fail(report, fmt.Errorf("file not found: %s: %w", path, err))
	}

	data, err := it.store.Read(path)
	if err != nil {
		return it.fail(report, fmt.Errorf("failed to read %s: %w", path, err))
	}

	fileContext := it.resolveEncoding(data, target, config, report)
	if !it.codec.Supports(fileContext.EffectiveEncoding) {
		return it.fail(report, fmt.Errorf("%w %q for %s", entities.ErrUnsupportedEncoding, fileContext.EffectiveEncoding, path))
	}

	text, err := it.codec.Decode(data, fileContext.EffectiveEncoding)
	if err != nil {
		return it.fail(report, fmt.Errorf("failed to decode %s: %w", path, err))
	}

	result, err := patcher.Patch(text, target, config)
	if errors.Is(err, entities.ErrNotApplicable) {
		report.AddWarning(fmt.Sprintf("Skipping %s: %v", path, err))
		return entities.FileSkipped, nil, err
	}
	if err != nil {
		return it.fail(report, fmt.Errorf("failed to patch %s: %w", path, err))
	}

	logger.Debug("Verify file encoding")
	encoded, err := it.codec.Encode(result.Text, fileContext.EffectiveEncoding, fileContext.WriteBOM)
	if err != nil {
		return it.fail(report, fmt.Errorf("failed to encode %s: %w", path, err))
	}

	if string(encoded) == string(data) {
		logger.Debugf("No changes for %s", path)
		return entities.FileUnchanged, result.Changes, nil
	}

	if opts.DryRun {
		logger.Infof("Would update %s", path)
		return entities.FileUpdated, result.Changes, nil
	}

	if writeErr := it.store.Write(path, encoded); writeErr != nil {
		return it.fail(report, fmt.Errorf("failed to write %s: %w", path, writeErr))
	}
	return entities.FileUpdated, result.Changes, nil
}

// resolveEncoding picks the encoding a file is decoded and encoded with.
// The detected encoding wins in auto mode; otherwise the configured one does
// and a disagreement is only a warning.
func (it *StampCommand) resolveEncoding(
	data []byte,
	target entities.ManifestTarget,
	config *entities.RunConfig,
	report *entities.RunReport,
) entities.FileContext {
	fileContext := entities.FileContext{
		Target:           target,
		DetectedEncoding: it.codec.Detect(data),
		WriteBOM:         config.WriteBOM,
	}
	logger.Debugf("Detected file encoding: %s", fileContext.DetectedEncoding)

	if config.AutoDetectEncoding() {
		fileContext.EffectiveEncoding = fileContext.DetectedEncoding
		return fileContext
	}

	fileContext.EffectiveEncoding = it.codec.Canonical(config.FileEncoding)
	if it.codec.Canonical(fileContext.DetectedEncoding) != fileContext.EffectiveEncoding {
		report.AddWarning(fmt.Sprintf(
			"Detected file encoding (%s) is different to the one specified (%s) for %s",
			fileContext.DetectedEncoding, fileContext.EffectiveEncoding, target.Path,
		))
	}
	return fileContext
}

func (it *StampCommand) fail(
	report *entities.RunReport,
	err error,
) (entities.FileStatus, []entities.FieldChange, error) {
	report.AddError(err.Error())
	return entities.FileFailed, nil, err
}

func logParameters(config *entities.RunConfig, host repositories.HostRepository) {
	logger.Infof("Source folder: %s", config.RootPath)
	logger.Infof("File names: %s", strings.Join(config.FileNames, ", "))
	logger.Infof("Insert attributes: %t", config.InsertAttributes)
	logger.Infof("File encoding: %s", config.FileEncoding)
	logger.Infof("Write unicode BOM: %t", config.WriteBOM)
	logger.Infof("Fail on warning: %t", config.FailOnWarning)
	logger.Infof("Ignore .NET Framework projects: %t", config.IgnoreNetFrameworkProjects)
	logger.Infof("Host: %s", host.Name())
	logger.Infof("Build components: %s", config.Components)

	for _, directive := range config.Directives {
		if !directive.IsEmpty() {
			logger.Infof("%s: %s", directive.Key, directive.Value)
		}
	}
}

// resolveVersions stores the final value of each version field: the last value
// written by a patcher, or the expanded desired value when no file held the field.
func resolveVersions(
	config *entities.RunConfig,
	changes map[entities.FieldKey]string,
	report *entities.RunReport,
) {
	for _, directive := range config.Directives {
		if !directive.IsVersion || directive.IsEmpty() {
			continue
		}

		value, ok := changes[directive.Key]
		if !ok {
			value = entities.MergeVersion("", false, directive.Value, config.Components)
		}
		report.SetResolved(directive.Key, value)

		if directive.Key == entities.FieldPackageVersion {
			logger.Infof("%s %s is a %s package version", directive.Key, value, entities.ClassifyPackageVersion(value))
		}
	}
}

func publishVariables(host repositories.HostRepository, config *entities.RunConfig, report *entities.RunReport) {
	for _, directive := range config.Directives {
		if directive.OutputVariable == "" {
			continue
		}
		value, ok := report.Resolved(directive.Key)
		if !ok {
			continue
		}
		if err := host.SetVariable(directive.OutputVariable, value); err != nil {
			report.AddError(fmt.Sprintf("Failed to set variable %s: %v", directive.OutputVariable, err))
		}
	}
}
