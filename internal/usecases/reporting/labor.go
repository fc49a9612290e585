package reporting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	timeclockLayout = "2006-01-02T15:04:05"
	shiftLayout     = "01/02 03:04 PM"
	openShift       = "(in)"

	fieldHours     = "hours"
	fieldEmployees = "employees"
	fieldShifts    = "shifts"
	columnEmployee = "employee"
	columnIn       = "in"
	columnOut      = "out"
)

type laborModule struct{}

func (laborModule) Type() domain.ReportType { return domain.ReportLabor }

func (laborModule) MaxDays() int { return 30 }

// Plan faz uma chamada por conta com todas as lojas dela, contas menores primeiro
func (laborModule) Plan(req *domain.ReportRequest, routes []Route) []FetchTask {
	batches := GroupByAccount(routes)
	tasks := make([]FetchTask, 0, len(batches))
	for _, b := range batches {
		tasks = append(tasks, FetchTask{
			Endpoint:    liveiqclient.DailyTimeclock,
			Account:     b.Account,
			Credentials: b.Credentials,
			StoreIDs:    b.StoreIDs,
			Start:       req.Start(),
			End:         req.End(),
		})
	}
	return tasks
}

func (laborModule) NewAccumulator(req *domain.ReportRequest) Accumulator {
	return &laborAccumulator{
		req:       req,
		shifts:    make(map[string][]laborShift),
		accounts:  make(map[string]string),
		employees: make(map[string]*employeeSummary),
		stores:    make(map[string]*storeLabor),
		daily:     NewAggregator(fieldHours, fieldShifts),
		title:     cases.Title(language.English),
	}
}

type laborShift struct {
	employee string
	in       time.Time
	out      *time.Time
	hours    float64
}

type employeeSummary struct {
	name   string
	hours  float64
	shifts int
}

type storeLabor struct {
	hours     float64
	shifts    int
	employees map[string]bool
}

type laborAccumulator struct {
	req       *domain.ReportRequest
	shifts    map[string][]laborShift
	accounts  map[string]string
	employees map[string]*employeeSummary
	stores    map[string]*storeLabor
	daily     *Aggregator
	title     cases.Caser
}

func (a *laborAccumulator) Fold(task FetchTask, payload []byte) error {
	records, err := liveiqdomain.DecodeRecords(payload)
	if err != nil {
		return err
	}

	for _, sid := range task.StoreIDs {
		a.accounts[sid] = task.Account
	}

	requested := make(map[string]bool, len(task.StoreIDs))
	for _, sid := range task.StoreIDs {
		requested[sid] = true
	}

	for _, rec := range records {
		sid := rec.String("restaurantNumber")
		if !requested[sid] {
			continue
		}

		shift, err := a.parseShift(rec)
		if err != nil {
			log.L.WithFields(log.Fields{
				"store":    sid,
				"endpoint": string(task.Endpoint),
			}).WithError(err).Warn("Marcação de ponto ignorada")
			continue
		}

		a.add(sid, shift)
	}
	return nil
}

func (a *laborAccumulator) parseShift(rec liveiqdomain.Record) (laborShift, error) {
	name := strings.TrimSpace(rec.StringOr("Unknown", "employeeName"))
	shift := laborShift{employee: a.title.String(name)}

	cin := rec.String("clockInDateTime", "clockIn")
	in, err := time.Parse(timeclockLayout, cin)
	if err != nil {
		return shift, fmt.Errorf("bad timestamp for %s: %q", shift.employee, cin)
	}
	shift.in = in

	if cout := rec.String("clockOutDateTime", "clockOut"); cout != "" {
		out, err := time.Parse(timeclockLayout, cout)
		if err != nil {
			return shift, fmt.Errorf("bad timestamp for %s: %q", shift.employee, cout)
		}
		shift.out = &out
		shift.hours = out.Sub(in).Hours()
	}

	return shift, nil
}

func (a *laborAccumulator) add(sid string, shift laborShift) {
	a.shifts[sid] = append(a.shifts[sid], shift)

	st, ok := a.stores[sid]
	if !ok {
		st = &storeLabor{employees: make(map[string]bool)}
		a.stores[sid] = st
	}
	st.hours += shift.hours
	st.shifts++
	st.employees[shift.employee] = true

	key := strings.ToLower(shift.employee)
	emp, ok := a.employees[key]
	if !ok {
		emp = &employeeSummary{name: shift.employee}
		a.employees[key] = emp
	}
	emp.hours += shift.hours
	emp.shifts++

	a.daily.Add(sid, shift.in.Format(domain.DateLayout), Metrics{fieldHours: shift.hours, fieldShifts: 1})
}

func (a *laborAccumulator) HasData(storeID string) bool {
	return len(a.shifts[storeID]) > 0
}

func (a *laborAccumulator) noDataMessage(today time.Time) string {
	if a.req.SingleDay() && a.req.Start() == today.Format(domain.DateLayout) {
		return "No clock-in data for today."
	}
	return "No data available."
}

func (a *laborAccumulator) Build(report *domain.Report) {
	empty := a.noDataMessage(report.GeneratedAt)

	shifts := domain.Section{
		Key:        "shifts",
		Title:      "Shifts",
		GroupLabel: "Store",
		Columns: []domain.Column{
			textCol(columnEmployee, "Employee", 30),
			textCol(columnIn, "In", 20),
			textCol(columnOut, "Out", 20),
			hoursCol(fieldHours, "Hrs", 5),
		},
	}
	for _, sid := range report.Stores {
		title := "Store " + sid
		if acc := a.accounts[sid]; acc != "" {
			title = fmt.Sprintf("Store %s (Acct: %s)", sid, acc)
		}
		group := domain.Group{Title: title, Empty: empty}

		list := append([]laborShift(nil), a.shifts[sid]...)
		sort.SliceStable(list, func(i, j int) bool {
			if !list[i].in.Equal(list[j].in) {
				return list[i].in.Before(list[j].in)
			}
			return list[i].employee < list[j].employee
		})
		for _, sh := range list {
			out := openShift
			if sh.out != nil {
				out = sh.out.Format(shiftLayout)
			}
			group.Rows = append(group.Rows, domain.Row{
				columnEmployee: sh.employee,
				columnIn:       sh.in.Format(shiftLayout),
				columnOut:      out,
				fieldHours:     sh.hours,
			})
		}
		shifts.Groups = append(shifts.Groups, group)
	}
	report.Sections = append(report.Sections, shifts)

	var empRows []domain.Row
	names := make([]*employeeSummary, 0, len(a.employees))
	for _, e := range a.employees {
		names = append(names, e)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].name < names[j].name })
	for _, e := range names {
		empRows = append(empRows, domain.Row{
			columnEmployee: e.name,
			fieldHours:     e.hours,
			fieldShifts:    float64(e.shifts),
		})
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:   "employees",
		Title: "Summary of Hours per Employee",
		Columns: []domain.Column{
			textCol(columnEmployee, "Employee", 30),
			hoursCol(fieldHours, "Hrs", 8),
			countCol(fieldShifts, "Shifts", 6),
		},
		Groups: singleGroup(empRows, empty),
	})

	var storeRows []domain.Row
	for _, sid := range a.daily.Stores() {
		st := a.stores[sid]
		storeRows = append(storeRows, domain.Row{
			columnStore:    sid,
			fieldHours:     st.hours,
			fieldEmployees: float64(len(st.employees)),
			fieldShifts:    float64(st.shifts),
		})
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:   "stores",
		Title: "Summary of Hours per Store",
		Columns: []domain.Column{
			textCol(columnStore, "Store", 9),
			hoursCol(fieldHours, "Hrs", 8),
			countCol(fieldEmployees, "Emps", 8),
			countCol(fieldShifts, "Shifts", 8),
		},
		Groups: singleGroup(storeRows, empty),
	})

	daily := domain.Section{
		Key:        "daily",
		Title:      "Daily Breakdown",
		GroupLabel: "Date",
		Columns: []domain.Column{
			textCol(columnStore, "Store", 9),
			hoursCol(fieldHours, "Hrs", 8),
			countCol(fieldShifts, "Shifts", 8),
		},
	}
	for _, date := range a.daily.Dates() {
		day := a.daily.Daily(date)
		group := domain.Group{Title: date}
		for _, sid := range a.daily.Stores() {
			if m, ok := day[sid]; ok {
				group.Rows = append(group.Rows, metricsRow(m, domain.Row{columnStore: sid}))
			}
		}
		daily.Groups = append(daily.Groups, group)
	}
	report.Sections = append(report.Sections, daily)
}
