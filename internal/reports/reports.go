// Package reports writes end-of-run daily summaries as parquet, either to
// a local folder or to object storage.
package reports

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/duskmantle/tavernsim/internal/cloudwriter"
	"github.com/duskmantle/tavernsim/internal/tavern"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

const summaryFileName = "day_summaries.parquet"

type Writer struct {
	folder       string
	cloudFactory cloudwriter.CloudWriterFactory
	bucket       string
}

// NewLocalWriter writes reports under the given folder.
func NewLocalWriter(folder string) *Writer {
	return &Writer{folder: folder}
}

// NewCloudWriter uploads reports to the given bucket instead.
func NewCloudWriter(factory cloudwriter.CloudWriterFactory, bucket string) *Writer {
	return &Writer{cloudFactory: factory, bucket: bucket}
}

// WriteDaySummaries writes one parquet row per simulated day.
func (w *Writer) WriteDaySummaries(rows []tavern.DaySummaryEvent) error {
	pf, err := w.openFile(summaryFileName)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(pf, new(tavern.DaySummaryEvent), 2)
	if err != nil {
		_ = pf.Close()
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			_ = pf.Close()
			return fmt.Errorf("failed to write summary row for day %d: %w", row.Day, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = pf.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return pf.Close()
}

func (w *Writer) openFile(name string) (source.ParquetFile, error) {
	if w.cloudFactory != nil {
		cw, err := w.cloudFactory.NewWriter(w.bucket, name)
		if err != nil {
			return nil, fmt.Errorf("failed to open cloud writer for %s: %w", name, err)
		}
		return &cloudParquetFile{cloudWriter: cw}, nil
	}

	if err := os.MkdirAll(w.folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports folder %s: %w", w.folder, err)
	}
	pf, err := local.NewLocalFileWriter(filepath.Join(w.folder, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create report file %s: %w", name, err)
	}
	return pf, nil
}

// cloudParquetFile adapts a CloudWriter to the write side of the parquet
// source interface. Reads and seeks from the end are unsupported; parquet
// writing only seeks forward over what it has buffered.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (int, error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
