package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDocumentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Manage past documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			docs, err := a.client.ListDocuments(cmd.Context(), pid)
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}
			return a.print(docs, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tファイル名\t種類\tサイズ\t登録日")
				for _, d := range docs {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", d.ID, d.FileName, d.ContentType, d.Size, d.CreatedAt)
				}
			})
		},
	}

	upload := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			doc, err := a.client.UploadDocument(cmd.Context(), pid, filepath.Base(args[0]), f)
			if err != nil {
				return fmt.Errorf("failed to upload document: %w", err)
			}
			return a.print(doc, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Uploaded document %d\t%s\t%d bytes\n", doc.ID, doc.FileName, doc.Size)
			})
		},
	}

	var outDir string
	download := &cobra.Command{
		Use:   "download ID",
		Short: "Download a document into --dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid document ID: %s", args[0])
			}

			tmp, err := os.CreateTemp(outDir, ".download-*")
			if err != nil {
				return fmt.Errorf("failed to create file: %w", err)
			}
			defer os.Remove(tmp.Name())

			name, err := a.client.DownloadDocument(cmd.Context(), pid, id, tmp)
			if closeErr := tmp.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return fmt.Errorf("failed to download document: %w", err)
			}
			if name == "" {
				name = fmt.Sprintf("document-%d", id)
			}

			dest := filepath.Join(outDir, filepath.Base(name))
			if err := os.Rename(tmp.Name(), dest); err != nil {
				return fmt.Errorf("failed to save document: %w", err)
			}
			fmt.Fprintf(a.out, "Saved %s\n", dest)
			return nil
		},
	}
	download.Flags().StringVar(&outDir, "dir", ".", "destination directory")

	cmd.AddCommand(upload, download, &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.deleteByID(cmd.Context(), args[0], "document", a.client.DeleteDocument)
		},
	})
	return cmd
}
