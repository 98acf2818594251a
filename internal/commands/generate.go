// Package commands contains the generation pipeline: listing, tree building,
// rendering, and writing.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/temirov/annotree/internal/lister"
	"github.com/temirov/annotree/internal/output"
	"github.com/temirov/annotree/internal/services/clipboard"
	"github.com/temirov/annotree/internal/tokenizer"
	"github.com/temirov/annotree/internal/types"
	"github.com/temirov/annotree/internal/utils"
)

const (
	errorListPathsFormat   = "listing paths: %w"
	errorWriteOutputFormat = "writing %s: %w"

	warningSkippedPathMessage    = "skipping path"
	warningClipboardMessage      = "failed to copy tree to clipboard"
	warningTokenCountMessage     = "failed to count tokens"
	debugListedPathsMessage      = "listed paths"
	debugFilteredPathsMessage    = "filtered paths"
	logFieldPath                 = "path"
	logFieldReason               = "reason"
	logFieldCount                = "count"
	standardOutputDestinationTag = "stdout"
)

// GenerateOptions wires the collaborators of one generation run. Copier and
// TokenCounter are optional; when set they receive the rendered tree.
type GenerateOptions struct {
	Lister         lister.Lister
	Filter         lister.Filter
	Describer      output.Describer
	Destination    string
	StandardOutput io.Writer
	Copier         clipboard.Copier
	TokenCounter   tokenizer.Counter
	Logger         *zap.Logger
}

// Generate lists paths, builds and renders the annotated tree, and writes it
// to the destination. Malformed paths are logged and skipped. Listing and
// writing failures abort the run before the destination is touched.
func Generate(ctx context.Context, options GenerateOptions) (types.GenerationResult, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	destination := options.Destination
	if destination == "" {
		destination = output.DefaultDestination
	}
	standardOutput := options.StandardOutput
	if standardOutput == nil {
		standardOutput = os.Stdout
	}

	listedPaths, listError := options.Lister.List(ctx)
	if listError != nil {
		return types.GenerationResult{}, fmt.Errorf(errorListPathsFormat, listError)
	}
	logger.Debug(debugListedPathsMessage, zap.Int(logFieldCount, len(listedPaths)))
	retainedPaths := options.Filter.Apply(listedPaths)
	logger.Debug(debugFilteredPathsMessage, zap.Int(logFieldCount, len(retainedPaths)))

	root, rejectionError := BuildTree(retainedPaths)
	skippedPaths := logRejectedPaths(logger, rejectionError)

	lines := output.RenderLines(root, options.Describer)
	renderedTree := strings.Join(lines, output.LineSeparator)

	if writeError := output.WriteDestination(destination, []byte(renderedTree), standardOutput); writeError != nil {
		return types.GenerationResult{}, fmt.Errorf(errorWriteOutputFormat, destination, writeError)
	}

	result := types.GenerationResult{
		Destination:  destination,
		Tree:         root.Summarize(),
		Lines:        len(lines),
		Bytes:        int64(len(renderedTree)),
		SkippedPaths: skippedPaths,
	}
	if destination == utils.StandardStreamPath {
		result.Destination = standardOutputDestinationTag
	}

	deliverRenderedTree(options, logger, renderedTree, &result)
	return result, nil
}

// deliverRenderedTree reports the token count and copies the tree to the
// clipboard. Failures of either are logged as warnings.
func deliverRenderedTree(options GenerateOptions, logger *zap.Logger, renderedTree string, result *types.GenerationResult) {
	if options.TokenCounter != nil {
		tokens, countError := tokenizer.Count(options.TokenCounter, renderedTree)
		if countError != nil {
			logger.Warn(warningTokenCountMessage, zap.Error(countError))
		} else {
			result.Tokens = tokens
			result.TokenModel = options.TokenCounter.Name()
		}
	}
	if options.Copier != nil {
		if copyError := options.Copier.Copy(renderedTree); copyError != nil {
			logger.Warn(warningClipboardMessage, zap.Error(copyError))
		} else {
			result.Copied = true
		}
	}
}

// logRejectedPaths logs every path the builder refused and returns how many there were.
func logRejectedPaths(logger *zap.Logger, rejectionError error) int {
	if rejectionError == nil {
		return 0
	}
	var rejections *multierror.Error
	if !errors.As(rejectionError, &rejections) {
		logger.Warn(warningSkippedPathMessage, zap.Error(rejectionError))
		return 1
	}
	for _, rejection := range rejections.Errors {
		var invalidPathError *InvalidPathError
		if errors.As(rejection, &invalidPathError) {
			logger.Warn(warningSkippedPathMessage, zap.String(logFieldPath, invalidPathError.Path), zap.String(logFieldReason, invalidPathError.Reason))
			continue
		}
		logger.Warn(warningSkippedPathMessage, zap.Error(rejection))
	}
	return len(rejections.Errors)
}
