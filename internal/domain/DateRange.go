package domain

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

// DateRange é um intervalo de datas inclusivo nas duas pontas
type DateRange struct {
	Start time.Time
	End   time.Time
}

type dateRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultDateRange cobre de hoje menos lookbackDays até hoje
func DefaultDateRange(now time.Time, lookbackDays int) DateRange {
	end := truncateDay(now)
	return DateRange{
		Start: end.AddDate(0, 0, -lookbackDays),
		End:   end,
	}
}

// ParseDateRange aplica os defaults quando start ou end não são informados.
func ParseDateRange(start, end string, now time.Time, lookbackDays int) (DateRange, error) {
	dr := DefaultDateRange(now, lookbackDays)

	if end != "" {
		parsed, err := utils.ParseDate(end)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end_date inválida %q", ErrInvalidRequest, end)
		}
		dr.End = parsed
		if start == "" {
			dr.Start = parsed.AddDate(0, 0, -lookbackDays)
		}
	}

	if start != "" {
		parsed, err := utils.ParseDate(start)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start_date inválida %q", ErrInvalidRequest, start)
		}
		dr.Start = parsed
	}

	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}

	return dr, nil
}

func (d DateRange) Validate() error {
	if d.Start.IsZero() || d.End.IsZero() {
		return fmt.Errorf("%w: intervalo de datas incompleto", ErrInvalidRequest)
	}
	if d.End.Before(d.Start) {
		return fmt.Errorf("%w: start_date %s depois de end_date %s", ErrInvalidRequest, d.StartString(), d.EndString())
	}
	return nil
}

func (d DateRange) StartString() string {
	return d.Start.Format(time.DateOnly)
}

func (d DateRange) EndString() string {
	return d.End.Format(time.DateOnly)
}

func (d DateRange) String() string {
	return d.StartString() + ".." + d.EndString()
}

func (d DateRange) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(dateRangeJSON{Start: d.StartString(), End: d.EndString()})
}

func (d *DateRange) UnmarshalJSON(data []byte) error {
	var raw dateRangeJSON
	if err := jsoniter.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := utils.ParseDate(raw.Start)
	if err != nil {
		return err
	}
	end, err := utils.ParseDate(raw.End)
	if err != nil {
		return err
	}

	d.Start, d.End = start, end
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
