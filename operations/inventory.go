package operations

import (
	"context"
	"fmt"
	"time"

	"github.com/joshyorko/rpms2sbom/anywork"
	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/pathlib"
	"github.com/joshyorko/rpms2sbom/pretty"
	"github.com/joshyorko/rpms2sbom/progresscore"
	"github.com/joshyorko/rpms2sbom/rpm"
	"github.com/joshyorko/rpms2sbom/sbom"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
)

const (
	StageDiscover = iota
	StageExtract
	StageValidate
	StageWrite
)

var StageNames = []string{"discover", "extract", "validate", "write"}

// Inventory turns a directory of RPM files into one SBOM document.
type Inventory struct {
	Root        string
	Output      string
	Suffix      string
	Reader      rpm.Reader
	Config      sbom.RunConfig
	SkipOnError bool
	Workers     int
	Finder      *pathlib.Finder
	Tracker     *progresscore.ProgressTracker
}

type Result struct {
	Root        string
	Output      string
	Packages    int
	Skipped     []string
	Fingerprint string
	Document    *v2_3.Document
	Stages      []progresscore.TrackedStep
	Elapsed     time.Duration
}

type extracted struct {
	path string
	meta *rpm.Metadata
	sha1 string
	err  error
}

func (it *Inventory) finder() *pathlib.Finder {
	if it.Finder != nil {
		return it.Finder
	}
	finder := pathlib.NewFinder(it.Root)
	if len(it.Suffix) > 0 {
		finder.Suffix = it.Suffix
	}
	return finder
}

func (it *Inventory) tracker() *progresscore.ProgressTracker {
	if it.Tracker == nil {
		it.Tracker = progresscore.NewProgressTracker(StageNames)
	}
	return it.Tracker
}

// Build discovers, extracts and assembles the document without validating
// or writing it.
func (it *Inventory) Build(ctx context.Context) (*sbom.Builder, []string, error) {
	tracker := it.tracker()

	tracker.StartStep(StageDiscover, it.Root)
	paths := it.finder().Collect()
	tracker.CompleteStep(StageDiscover, fmt.Sprintf("%d packages", len(paths)))
	common.Debug("found %d package files below %q", len(paths), it.Root)

	builder := sbom.NewBuilder(it.Config)
	tracker.StartStep(StageExtract, "")
	results, err := it.extractAll(ctx, paths)
	if err != nil {
		tracker.FailStep(StageExtract, err.Error())
		return nil, nil, err
	}
	skipped := []string{}
	for _, result := range results {
		if result.err != nil {
			if !it.SkipOnError {
				failure := &ExtractionError{Path: result.path, Err: result.err}
				tracker.FailStep(StageExtract, failure.Error())
				return nil, nil, failure
			}
			common.Warning("Skipping %q: %v", result.path, result.err)
			skipped = append(skipped, result.path)
			continue
		}
		builder.Add(result.path, result.meta, result.sha1)
	}
	tracker.CompleteStep(StageExtract, fmt.Sprintf("%d added, %d skipped", builder.Len(), len(skipped)))
	return builder, skipped, nil
}

// Run executes the whole pipeline and writes Output.
func (it *Inventory) Run(ctx context.Context) (*Result, error) {
	tracker := it.tracker()
	builder, skipped, err := it.Build(ctx)
	if err != nil {
		skipRemaining(tracker, StageValidate)
		return nil, err
	}
	document := builder.Document()

	tracker.StartStep(StageValidate, "")
	err = sbom.Check(document)
	if err != nil {
		ReportViolations(sbom.Validate(document))
		tracker.FailStep(StageValidate, err.Error())
		skipRemaining(tracker, StageWrite)
		return nil, err
	}
	tracker.CompleteStep(StageValidate, "valid")

	tracker.StartStep(StageWrite, it.Output)
	err = sbom.Write(document, it.Output)
	if err != nil {
		tracker.FailStep(StageWrite, err.Error())
		return nil, &WriteError{Path: it.Output, Err: err}
	}
	tracker.CompleteStep(StageWrite, it.Output)

	return &Result{
		Root:        it.Root,
		Output:      it.Output,
		Packages:    len(document.Packages),
		Skipped:     skipped,
		Fingerprint: sbom.Fingerprint(document),
		Document:    document,
		Stages:      tracker.Steps(),
		Elapsed:     tracker.Elapsed(),
	}, nil
}

func skipRemaining(tracker *progresscore.ProgressTracker, from int) {
	for index := from; index < len(StageNames); index++ {
		tracker.SkipStep(index, "earlier stage failed")
	}
}

// ReportViolations logs every validation message with its context.
func ReportViolations(messages []sbom.ValidationMessage) {
	for _, message := range messages {
		pretty.Warning("%s", message.Message)
		pretty.Warning("context: spdx_id=%q parent_id=%q element=%s", message.Context.SPDXID, message.Context.ParentID, message.Context.Element)
	}
}

func (it *Inventory) extractAll(ctx context.Context, paths []string) ([]extracted, error) {
	results := make([]extracted, len(paths))
	if it.Workers < 2 || len(paths) < 2 {
		for index, path := range paths {
			results[index] = extract(ctx, it.Reader, path)
			if results[index].err != nil && !it.SkipOnError {
				return results[:index+1], nil
			}
		}
		return results, nil
	}

	group := anywork.New(it.Workers)
	defer group.Close()
	common.Debug("extracting %d packages with %d workers", len(paths), group.Scale())
	for index, path := range paths {
		group.Backlog(func() {
			results[index] = extract(ctx, it.Reader, path)
		})
	}
	err := group.Sync()
	if err != nil {
		return nil, err
	}
	return results, nil
}

func extract(ctx context.Context, reader rpm.Reader, path string) extracted {
	common.Timeline("extract %s", path)
	meta, err := reader.Read(ctx, path)
	if err != nil {
		return extracted{path: path, err: err}
	}
	sha1, err := pathlib.Sha1File(path)
	if err != nil {
		return extracted{path: path, err: fmt.Errorf("checksum: %w", err)}
	}
	return extracted{path: path, meta: meta, sha1: sha1}
}
