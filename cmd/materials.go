/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/eslsoft/examprep/internal/adapter/mapping"
	"github.com/eslsoft/examprep/internal/app"
	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/usecase"
)

type materialsOptions struct {
	year       string
	subject    string
	user       string
	complete   []string
	watch      []string
	openPapers []string
	openVideos []string
}

// materialsCmd loads the materials page of one subject and applies progress actions to it.
var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Show the papers and videos of a subject for an academic year",
	Example: `  examprep materials --user u1 --year 2024 --subject organic-chemistry
  examprep materials --user u1 --year 2024 --subject physics --complete p1 --open-video v2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := materialsOpts
		if opts.user == "" {
			return fmt.Errorf("%w: sign in with --user (redirect to %s)", entity.ErrInvalidUserID, entity.HomePath)
		}

		uc, cleanup, err := app.InitializeUsecases()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()

		recorder := &usecase.NotificationRecorder{}
		notifier := usecase.MultiNotifier(usecase.LogNotifier{Logger: uc.Logger}, recorder)
		session, err := usecase.NewSession(opts.user, uc.Materials, uc.Progress, notifier, uc.Logger)
		if err != nil {
			return err
		}
		defer session.Close()

		ctx := cmd.Context()
		if _, err := session.Navigate(ctx, opts.year, opts.subject); err != nil {
			return err
		}

		var errs []error
		for _, id := range opts.complete {
			errs = append(errs, session.MarkPaperComplete(ctx, id))
		}
		for _, id := range opts.watch {
			errs = append(errs, session.MarkVideoWatched(ctx, id))
		}
		for _, id := range opts.openPapers {
			url, err := session.OpenPaper(ctx, id)
			if err != nil {
				errs = append(errs, fmt.Errorf("open paper %s: %w", id, err))
				continue
			}
			cmd.PrintErrf("paper %s: %s\n", id, url)
		}
		for _, id := range opts.openVideos {
			url, err := session.OpenVideo(ctx, id)
			if err != nil {
				errs = append(errs, fmt.Errorf("open video %s: %w", id, err))
				continue
			}
			cmd.PrintErrf("video %s: %s\n", id, url)
		}

		out := mapping.ToPbMaterials(session.Snapshot(), opts.year)
		out.Notices = mapping.ToPbNotices(recorder.Notifications())
		raw, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return errors.Join(errs...)
	},
}

var materialsOpts materialsOptions

func init() {
	rootCmd.AddCommand(materialsCmd)

	flags := materialsCmd.Flags()
	flags.StringVar(&materialsOpts.user, "user", "", "signed-in user id")
	flags.StringVar(&materialsOpts.year, "year", "", "academic year, e.g. 2024")
	flags.StringVar(&materialsOpts.subject, "subject", "", "subject slug, e.g. organic-chemistry")
	flags.StringSliceVar(&materialsOpts.complete, "complete", nil, "paper ids to mark completed")
	flags.StringSliceVar(&materialsOpts.watch, "watch", nil, "video ids to mark watched")
	flags.StringSliceVar(&materialsOpts.openPapers, "open-paper", nil, "paper ids to open (marks them completed)")
	flags.StringSliceVar(&materialsOpts.openVideos, "open-video", nil, "video ids to open (marks them watched)")
	cobra.CheckErr(materialsCmd.MarkFlagRequired("year"))
	cobra.CheckErr(materialsCmd.MarkFlagRequired("subject"))
}
