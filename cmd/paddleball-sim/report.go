package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/paddleball/ecs"
	"github.com/plus3/paddleball/game"
)

type Report struct {
	RunId     string        `yaml:"run_id"`
	Mode      string        `yaml:"mode"`
	TickRate  time.Duration `yaml:"tick_rate"`
	Simulated time.Duration `yaml:"simulated"`
	Entities  int           `yaml:"entities"`

	Frames     int64          `yaml:"frames"`
	WallTime   time.Duration  `yaml:"wall_time"`
	UpdateTime Stats          `yaml:"update_time"`
	Systems    []SystemRow    `yaml:"systems"`
	Counters   game.Counters  `yaml:"counters"`
	Records    map[string]int `yaml:"records"`

	MemStatsStart runtime.MemStats `yaml:"-"`
	MemStatsEnd   runtime.MemStats `yaml:"-"`
}

type SystemRow struct {
	Name       string        `yaml:"name"`
	Executions int64         `yaml:"executions"`
	Avg        time.Duration `yaml:"avg"`
	Max        time.Duration `yaml:"max"`
	Total      time.Duration `yaml:"total"`
}

type Stats struct {
	Min     time.Duration   `yaml:"min"`
	Max     time.Duration   `yaml:"max"`
	Avg     time.Duration   `yaml:"avg"`
	Samples []time.Duration `yaml:"-"`
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect copies the system and entity statistics of a finished run.
func (r *Report) Collect(systems *ecs.SystemManagerStats, entities *ecs.EntityManagerStats, counters game.Counters) {
	r.Frames = systems.FrameCount
	r.Counters = counters
	r.Entities = entities.EntityCount
	r.Records = entities.RecordCounts

	r.Systems = r.Systems[:0]
	for _, s := range systems.Systems {
		r.Systems = append(r.Systems, SystemRow{
			Name:       s.Name,
			Executions: s.ExecutionCount,
			Avg:        s.AvgDuration,
			Max:        s.MaxDuration,
			Total:      s.TotalDuration,
		})
	}
}

func (r *Report) Generate(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "", "markdown":
		return r.markdown(w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Report) markdown(w io.Writer) error {
	const reportTemplate = `
# Paddleball Simulation Report

## Run
- **Run Id:** {{.RunId}}
- **Mode:** {{.Mode}}
- **Tick Rate:** {{.TickRate}}
- **Simulated Time:** {{.Simulated}}
- **Entities:** {{.Entities}}

## Game
- **Frames:** {{.Frames}}
- **Collisions:** {{.Counters.Collisions}}
- **Offscreen Resets:** {{.Counters.Offscreen}}

## Performance
- **Wall Time:** {{.WallTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Executions | Avg | Max | Total |
|--------|-----------:|----:|----:|------:|
{{- range .Systems}}
| {{.Name}} | {{.Executions}} | {{.Avg}} | {{.Max}} | {{.Total}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
