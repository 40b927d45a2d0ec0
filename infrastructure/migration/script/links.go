package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

type clientLinkWriter interface {
	Upsert(ctx context.Context, accountID, clientID string) error
}

type importResult struct {
	Imported int
	Skipped  int
}

// importClientLinks lê linhas "account_id,client_id". A linha de cabeçalho é opcional.
// Linhas inválidas são ignoradas. Erro de gravação interrompe a importação.
func importClientLinks(ctx context.Context, writer clientLinkWriter, source io.Reader) (importResult, error) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var result importResult
	line := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return result, fmt.Errorf("erro ao ler o CSV na linha %d: %w", line, err)
		}

		if line == 1 && isHeader(record) {
			continue
		}

		if len(record) < 2 || strings.TrimSpace(record[1]) == "" {
			logrus.WithField("line", line).Warn("AVISO: linha sem client_id, ignorada")
			result.Skipped++
			continue
		}

		accountID, err := domain.NormalizeAccountID(record[0])
		if err != nil {
			logrus.WithField("line", line).WithError(err).Warn("AVISO: account_id inválido, linha ignorada")
			result.Skipped++
			continue
		}

		if err := writer.Upsert(ctx, accountID, strings.TrimSpace(record[1])); err != nil {
			return result, fmt.Errorf("erro ao gravar vínculo da conta %s: %w", accountID, err)
		}
		result.Imported++

		if result.Imported%100 == 0 {
			logrus.Infof("Progresso: %d vínculos importados", result.Imported)
		}
	}

	return result, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "account_id")
}
