package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/client"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

func (c *cli) newMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Browse and manage the memories of the active vault",
	}
	cmd.AddCommand(
		c.newMediaListCmd(),
		c.newMediaSearchCmd(),
		c.newMediaShowCmd(),
		c.newMediaUploadCmd(),
		c.newMediaEditCmd(),
		c.newMediaDownloadCmd(),
		c.newMediaFavoriteCmd(),
		c.newMediaDeleteCmd(),
	)
	return cmd
}

func (c *cli) newMediaListCmd() *cobra.Command {
	var (
		params    models.MediaQueryParams
		mediaType string
		sortBy    string
		pages     int
		favorites bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List memories, newest first",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&params.Search, "search", "", "search in titles and descriptions")
	cmd.Flags().StringVar(&mediaType, "type", "", "PHOTO, VIDEO or DOCUMENT")
	cmd.Flags().StringSliceVar(&params.Tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().StringSliceVar(&params.Locations, "location", nil, "filter by location (repeatable)")
	cmd.Flags().StringVar(&params.Era, "era", "", "filter by decade, e.g. 1970s")
	cmd.Flags().StringVar(&sortBy, "sort", string(models.SortNewest), "newest, oldest or title")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "list favorites only")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, _ []string, a *client.App) error {
		params.Type = models.MediaType(strings.ToUpper(mediaType))
		params.SortBy = models.MediaSort(sortBy)

		first, next := a.Services.Media.List, a.Services.Media.NextPage
		if favorites {
			first, next = a.Services.Media.Favorites, a.Services.Media.NextFavoritesPage
		}
		data, err := loadPages(cmd.Context(), params, pages, first, next)
		if err != nil {
			return err
		}

		return printMediaList(cmd.OutOrStdout(), data)
	})
	return cmd
}

func printMediaList(w io.Writer, data query.InfiniteData[models.MediaItem]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tDATE\tTITLE\tFAV")
	for _, item := range data.Items() {
		fav := ""
		if item.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", item.ID, item.Type, item.DateTaken, item.Title, fav)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d\n", len(data.Items()), data.TotalCount())
	return err
}

func (c *cli) newMediaSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Search as you type: every input line replaces the search term",
		Args:  cobra.NoArgs,
		RunE: c.action(inVault, func(cmd *cobra.Command, _ []string, a *client.App) error {
			ctx := cmd.Context()
			term := a.SearchInput()
			defer term.Stop()

			inputDone := make(chan struct{})
			go func() {
				defer close(inputDone)
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					term.Set(sc.Text())
				}
				term.Flush()
			}()

			search := func(q string) error {
				data, err := a.Services.Media.List(ctx, models.MediaQueryParams{Search: q})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Results for %q\n", q)
				return printMediaList(cmd.OutOrStdout(), data)
			}

			for {
				select {
				case q := <-term.C():
					if err := search(q); err != nil {
						return err
					}
				case <-inputDone:
					// Flush ran before the input closed; its emission may
					// still be buffered
					select {
					case q := <-term.C():
						return search(q)
					default:
						return nil
					}
				case <-ctx.Done():
					return nil
				}
			}
		}),
	}
}

// loadPages loads the first page, then up to pages-1 more while the server
// reports a next one.
func loadPages[T, P any](ctx context.Context, params P, pages int, first, next func(context.Context, P) (query.InfiniteData[T], error)) (query.InfiniteData[T], error) {
	data, err := first(ctx, params)
	for i := 1; err == nil && i < pages && data.HasNextPage(); i++ {
		data, err = next(ctx, params)
	}
	return data, err
}

func (c *cli) newMediaShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <media-id>",
		Short: "Show the details of a memory",
		Args:  cobra.ExactArgs(1),
		RunE: c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
			item, err := a.Services.Media.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printMedia(cmd, item)
			return nil
		}),
	}
}

func printMedia(cmd *cobra.Command, item models.MediaItem) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", item.ID)
	fmt.Fprintf(tw, "Title\t%s\n", item.Title)
	if item.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", item.Description)
	}
	fmt.Fprintf(tw, "Type\t%s\n", item.Type)
	fmt.Fprintf(tw, "Date taken\t%s\n", item.DateTaken)
	if item.Location != "" {
		fmt.Fprintf(tw, "Location\t%s\n", item.Location)
	}
	if len(item.Tags) > 0 {
		fmt.Fprintf(tw, "Tags\t%s\n", strings.Join(item.Tags, ", "))
	}
	fmt.Fprintf(tw, "Visibility\t%s\n", item.Visibility)
	fmt.Fprintf(tw, "Uploaded by\t%s\n", item.UploaderName)
	fmt.Fprintf(tw, "Favorite\t%t\n", item.IsFavorite)
	for _, f := range item.Files {
		fmt.Fprintf(tw, "File\t%s (%s)\n", f.ID, f.MimeType)
	}
	_ = tw.Flush()
}

// readUpload loads path and guesses its mime type from the extension, then
// from the content.
func readUpload(path string) (models.UploadFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.UploadFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}
	if mt, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = mt
	}

	return models.UploadFile{Name: filepath.Base(path), MimeType: mimeType, Content: content}, nil
}

func readUploads(paths []string) ([]models.UploadFile, error) {
	files := make([]models.UploadFile, 0, len(paths))
	for _, p := range paths {
		f, err := readUpload(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func (c *cli) newMediaUploadCmd() *cobra.Command {
	var (
		req        models.UploadMediaRequest
		visibility string
	)
	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload a memory; the first file is the primary one",
		Args:  cobra.RangeArgs(1, models.MaxUploadFiles),
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "title (defaults to the first file name)")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().StringVar(&req.DateTaken, "date", "", "date taken, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Location, "location", "", "where it was taken")
	cmd.Flags().StringSliceVar(&req.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringVar(&visibility, "visibility", string(models.VisibilityFamily), "family or private")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
		files, err := readUploads(args)
		if err != nil {
			return err
		}
		req.Files = files
		req.Visibility = models.Visibility(strings.ToLower(visibility))
		if req.Title == "" {
			req.Title = strings.TrimSuffix(files[0].Name, filepath.Ext(files[0].Name))
		}

		item, err := a.Services.Media.Upload(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), item.ID)
		return nil
	})
	return cmd
}

func (c *cli) newMediaEditCmd() *cobra.Command {
	var (
		title, description, dateTaken, location, visibility string
		tags, addFiles, removeFiles                         []string
		clearDate                                           bool
	)
	cmd := &cobra.Command{
		Use:   "edit <media-id>",
		Short: "Change the details or files of a memory",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&dateTaken, "date", "", "new date taken, YYYY-MM-DD")
	cmd.Flags().BoolVar(&clearDate, "clear-date", false, "remove the date taken")
	cmd.Flags().StringVar(&location, "location", "", "new location")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "replace the tags (repeatable)")
	cmd.Flags().StringVar(&visibility, "visibility", "", "family or private")
	cmd.Flags().StringSliceVar(&addFiles, "add-file", nil, "file to attach (repeatable)")
	cmd.Flags().StringSliceVar(&removeFiles, "remove-file", nil, "file id to detach (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("date", "clear-date")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
		flags := cmd.Flags()
		req := models.UpdateMediaRequest{ID: args[0], ClearDateTaken: clearDate}
		if flags.Changed("title") {
			req.Title = &title
		}
		if flags.Changed("description") {
			req.Description = &description
		}
		if flags.Changed("date") {
			req.DateTaken = &dateTaken
		}
		if flags.Changed("location") {
			req.Location = &location
		}
		if flags.Changed("tag") {
			req.Tags, req.SetTags = tags, true
		}
		if flags.Changed("visibility") {
			v := models.Visibility(strings.ToLower(visibility))
			req.Visibility = &v
		}
		if len(addFiles) > 0 {
			files, err := readUploads(addFiles)
			if err != nil {
				return err
			}
			req.NewFiles = files
		}
		req.RemoveFileIDs = removeFiles

		item, err := a.Services.Media.Update(cmd.Context(), req)
		if err != nil {
			return err
		}
		printMedia(cmd, item)
		return nil
	})
	return cmd
}

func (c *cli) newMediaDownloadCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download <media-id>",
		Short: "Save the primary file of a memory",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "target file (defaults to the title)")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
		item, err := a.Services.Media.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if output == "" {
			output = downloadName(item)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		n, err := a.Services.Media.Download(cmd.Context(), item, f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(output)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", output, n)
		return nil
	})
	return cmd
}

// downloadName derives a file name from the title and the primary file.
func downloadName(item models.MediaItem) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, strings.TrimSpace(item.Title))
	if name == "" {
		name = item.ID
	}

	for _, f := range item.Files {
		if !f.IsPrimary {
			continue
		}
		if exts, _ := mime.ExtensionsByType(f.MimeType); len(exts) > 0 {
			name += exts[0]
		}
		break
	}
	return name
}

func (c *cli) newMediaFavoriteCmd() *cobra.Command {
	var off bool
	cmd := &cobra.Command{
		Use:   "favorite <media-id>",
		Short: "Mark a memory as favorite",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVar(&off, "off", false, "remove the mark instead")

	cmd.RunE = c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
		state, err := a.Services.Media.ToggleFavorite(cmd.Context(), args[0], !off)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s favorite: %t\n", state.MediaID, state.IsFavorite)
		return nil
	})
	return cmd
}

func (c *cli) newMediaDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <media-id>...",
		Short: "Delete one or more memories",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.action(inVault, func(cmd *cobra.Command, args []string, a *client.App) error {
			if len(args) == 1 {
				return a.Services.Media.Delete(cmd.Context(), args[0])
			}
			_, err := a.Services.Media.BulkDelete(cmd.Context(), args)
			return err
		}),
	}
}
