package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"branchdiff/internal/cache"
	"branchdiff/internal/compare"
	"branchdiff/internal/config"
	"branchdiff/internal/fetch"
	"branchdiff/internal/models"
	"branchdiff/internal/version"
)

// Options collects the recognized compare flags.
type Options struct {
	Arch     string
	Comp     string
	Force    bool
	Packages []string
	File     string
	Output   string
}

// NewCompareCmd creates the compare command
func NewCompareCmd() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "compare BRANCH1 BRANCH2",
		Short: "Compare package manifests of two branches",
		Long: `Downloads (or reuses cached) package manifests for both branches and
writes a per-architecture JSON report: packages only in the second branch,
packages only in the first branch, and shared packages whose first-branch
version stands in the requested relation to the second-branch version.

Example:  branchdiff compare sisyphus p11 --comp gt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := version.ParseFilter(opts.Comp)
			if err != nil {
				return &models.OpError{Type: models.ErrInvalidConfig, Err: err}
			}

			cfg, err := config.Load()
			if err != nil {
				return &models.OpError{Type: models.ErrInvalidConfig, Err: err}
			}
			if opts.Output != "" {
				cfg.Output = opts.Output
			}

			logrus.Debugf("Configuration: %+v", cfg)
			return runCompare(cmd.Context(), cfg, args[0], args[1], filter, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Arch, "arch", "a", fetch.ArchAll, "Restrict comparison to one architecture. Example: --arch aarch64")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Re-download manifests ignoring the cache")
	cmd.Flags().StringVarP(&opts.Comp, "comp", "c", version.DefaultFilterToken, "Relation to report for shared packages (lt, gt, eq, ge, le, ne)")
	cmd.Flags().StringSliceVarP(&opts.Packages, "packages", "p", nil, "Restrict comparison to these package names")
	cmd.Flags().StringVar(&opts.File, "file", "", "File with package names to restrict comparison to, one per line")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Report file path (overrides configuration)")

	return cmd
}

func runCompare(ctx context.Context, cfg *config.Config, first, second string, filter version.Filter, opts *Options) error {
	store := cache.NewStore(afero.NewOsFs(), cfg.CacheDir, cfg.TTL)
	client := fetch.NewClient(cfg.Endpoint, cfg.Timeout, true)

	if opts.Force {
		logrus.Info("Forcing re-download of branch manifests")
		for _, branch := range []string{first, second} {
			if err := store.Invalidate(branch); err != nil {
				return &models.OpError{Type: models.ErrCache, Branch: branch, Err: err}
			}
		}
	}

	allowed, err := loadAllowList(opts.Packages, opts.File)
	if err != nil {
		return &models.OpError{Type: models.ErrInvalidConfig, Err: err}
	}

	indices := make([]*compare.Index, 2)
	for i, branch := range []string{first, second} {
		manifest, err := loadManifest(ctx, store, client, branch, opts.Arch)
		if err != nil {
			return err
		}

		packages := manifest.Packages
		if len(allowed) > 0 {
			packages = filterByName(packages, allowed)
		}
		logrus.Debugf("Branch %s: %d package records", branch, len(packages))

		indices[i] = compare.NewIndex(packages)
	}

	arches := compare.UnionArchitectures(indices[0], indices[1])
	if opts.Arch != fetch.ArchAll {
		arches = []string{opts.Arch}
	}
	logrus.Infof("Comparing %d architectures with relation %s", len(arches), filter)

	results := make(map[string]compare.Result, len(arches))
	for _, arch := range arches {
		results[arch] = compare.Reconcile(indices[0], indices[1], arch, filter)
	}
	report := compare.BuildReport(results)

	if err := writeReport(cfg.Output, report); err != nil {
		return &models.OpError{Type: models.ErrReportWrite, Err: err}
	}
	logrus.Infof("Report written to %s", cfg.Output)

	return nil
}

// loadManifest returns the decoded manifest for a branch, downloading it
// into the cache first when no fresh copy exists.
func loadManifest(ctx context.Context, store *cache.Store, client *fetch.Client, branch, arch string) (*models.Manifest, error) {
	if store.Fresh(branch) {
		logrus.Infof("Using cached manifest for branch %s", branch)
	} else {
		logrus.Infof("Downloading manifest for branch %s...", branch)
		err := store.Put(branch, func(w io.Writer) error {
			return client.Fetch(ctx, branch, arch, w)
		})
		if err != nil {
			var opErr *models.OpError
			if errors.As(err, &opErr) {
				return nil, err
			}
			return nil, &models.OpError{Type: models.ErrCache, Branch: branch, Err: err}
		}
	}

	f, err := store.Open(branch)
	if err != nil {
		return nil, &models.OpError{Type: models.ErrCache, Branch: branch, Err: err}
	}
	defer f.Close()

	manifest, err := models.DecodeManifest(f)
	if err != nil {
		return nil, &models.OpError{Type: models.ErrManifestParse, Branch: branch, Err: err}
	}
	return manifest, nil
}

// writeReport serializes the report as indented JSON.
func writeReport(path string, report compare.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
