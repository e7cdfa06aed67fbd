package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mehfil/models"
	"mehfil/services/booking"
	"mehfil/services/planner"
	"mehfil/utils"
)

// ParamKind is the JSON type of a tool parameter.
type ParamKind string

const (
	KindString      ParamKind = "string"
	KindNumber      ParamKind = "number"
	KindInteger     ParamKind = "integer"
	KindStringArray ParamKind = "string_array"
)

// Param describes one tool parameter.
type Param struct {
	Name        string
	Kind        ParamKind
	Description string
	Required    bool
}

// ToolDecl is the model-facing declaration of a tool.
type ToolDecl struct {
	Name        string
	Description string
	Params      []Param
}

// toolEnv is what a tool may touch while it runs.
type toolEnv struct {
	planner  planner.PlannerService
	bookings booking.BookingService
	caller   booking.Caller
	state    *models.PlanningState
}

type toolFunc func(ctx context.Context, env *toolEnv, args map[string]any) (any, error)

type tool struct {
	ToolDecl
	run toolFunc
}

// typed decodes raw model arguments into T before calling fn.
func typed[T any](fn func(ctx context.Context, env *toolEnv, in T) (any, error)) toolFunc {
	return func(ctx context.Context, env *toolEnv, args map[string]any) (any, error) {
		var in T
		b, err := json.Marshal(args)
		if err != nil {
			return nil, utils.NewValidationError("Invalid tool arguments")
		}
		if err := json.Unmarshal(b, &in); err != nil {
			return nil, utils.NewValidationError(fmt.Sprintf("Invalid tool arguments: %v", err))
		}
		return fn(ctx, env, in)
	}
}

type searchInput struct {
	GuestCount int    `json:"guestCount"`
	Budget     int64  `json:"budget"`
	Location   string `json:"location"`
	Date       string `json:"date"`
}

type availabilityInput struct {
	VendorID string `json:"vendorId"`
	Date     string `json:"date"`
}

type budgetInput struct {
	GuestCount      int      `json:"guestCount"`
	SelectedVendors []string `json:"selectedVendors"`
}

type bookingInput struct {
	VendorID   string `json:"vendorId"`
	EventDate  string `json:"eventDate"`
	GuestCount int    `json:"guestCount"`
}

var (
	guestCountParam = Param{Name: "guestCount", Kind: KindInteger, Description: "Number of wedding guests"}
	budgetParam     = Param{Name: "budget", Kind: KindNumber, Description: "Total budget in PKR, not per head"}
	locationParam   = Param{Name: "location", Kind: KindString, Description: "City name like Karachi, Lahore"}
	dateParam       = Param{Name: "date", Kind: KindString, Description: "Wedding date in YYYY-MM-DD format"}
)

func searchTool(name, description string, category models.VendorCategory, withGuests bool) tool {
	params := []Param{dateParam, budgetParam, locationParam}
	if withGuests {
		params = append([]Param{guestCountParam}, params...)
	}
	return tool{
		ToolDecl: ToolDecl{Name: name, Description: description, Params: params},
		run: typed(func(ctx context.Context, env *toolEnv, in searchInput) (any, error) {
			c := planner.Criteria{GuestCount: in.GuestCount, Budget: in.Budget, Location: in.Location, Date: in.Date}
			res, err := env.planner.Search(ctx, category, c)
			if err != nil {
				return nil, err
			}
			env.remember(c)
			for _, hit := range res.Results {
				env.shortlist(hit.ID)
			}
			return res, nil
		}),
	}
}

// toolTable lists every tool the assistant can call, in declaration order.
var toolTable = []tool{
	searchTool("getAvailableHalls",
		"Search for wedding halls that match the guest count, budget, location and date. Use when the user asks for venues, halls or banquet spaces.",
		models.CategoryHall, true),
	searchTool("getAvailableCatering",
		"Search for catering services that can serve the guests within budget on the date. Use when the user asks for food, catering or menu.",
		models.CategoryCatering, true),
	searchTool("getAvailablePhotography",
		"Search for photography services available on the date within budget. Use when the user asks for photographers or videographers.",
		models.CategoryPhotography, false),
	searchTool("getAvailableCars",
		"Search for wedding car rentals. Use when the user asks for cars, vehicles or a bridal car.",
		models.CategoryCar, false),
	searchTool("getAvailableBuses",
		"Search for guest transport buses. Use when the user asks for buses, transport or guest shuttles.",
		models.CategoryBus, true),
	{
		ToolDecl: ToolDecl{
			Name:        "checkVendorAvailability",
			Description: "Check if a specific vendor is available on a date. Use this BEFORE booking to confirm availability.",
			Params: []Param{
				{Name: "vendorId", Kind: KindString, Description: "Vendor ID like 'hall_001' or 'cater_003'", Required: true},
				{Name: "date", Kind: KindString, Description: "Date to check, YYYY-MM-DD", Required: true},
			},
		},
		run: typed(func(ctx context.Context, env *toolEnv, in availabilityInput) (any, error) {
			res, err := env.planner.CheckAvailability(ctx, in.VendorID, in.Date)
			if errors.Is(err, planner.ErrVendorNotFound) {
				return map[string]any{"success": false, "available": false, "error": "Vendor not found"}, nil
			}
			if err != nil {
				return nil, err
			}
			env.shortlist(res.VendorID)
			return res, nil
		}),
	},
	{
		ToolDecl: ToolDecl{
			Name:        "calculateWeddingBudget",
			Description: "Calculate the total cost of selected vendors with a breakdown. Use when the user wants a total or a budget summary.",
			Params: []Param{
				{Name: "guestCount", Kind: KindInteger, Description: "Number of wedding guests", Required: true},
				{Name: "selectedVendors", Kind: KindStringArray, Description: "Vendor IDs like ['hall_001', 'cater_002']", Required: true},
			},
		},
		run: typed(func(ctx context.Context, env *toolEnv, in budgetInput) (any, error) {
			res, err := env.planner.AggregateBudget(ctx, in.GuestCount, in.SelectedVendors)
			if err != nil {
				return nil, err
			}
			env.remember(planner.Criteria{GuestCount: in.GuestCount})
			return res, nil
		}),
	},
	{
		ToolDecl: ToolDecl{
			Name:        "createBooking",
			Description: "Book the vendor for real. Use only after the user explicitly confirms, and always check availability first.",
			Params: []Param{
				{Name: "vendorId", Kind: KindString, Description: "ID of the vendor to book", Required: true},
				{Name: "eventDate", Kind: KindString, Description: "Wedding date, YYYY-MM-DD", Required: true},
				{Name: "guestCount", Kind: KindInteger, Description: "Number of guests"},
			},
		},
		run: typed(func(ctx context.Context, env *toolEnv, in bookingInput) (any, error) {
			res, err := env.bookings.CreateBooking(ctx, booking.Request{
				VendorID:   in.VendorID,
				EventDate:  in.EventDate,
				GuestCount: in.GuestCount,
				Caller:     env.caller,
			})
			var taken *booking.DateTakenError
			if errors.As(err, &taken) {
				return map[string]any{"success": false, "error": taken.Error(), "vendorName": taken.VendorName}, nil
			}
			if err != nil {
				return nil, err
			}
			env.state.Booked = appendUnique(env.state.Booked, res.VendorID)
			return res, nil
		}),
	},
}

var toolsByName = func() map[string]tool {
	m := make(map[string]tool, len(toolTable))
	for _, t := range toolTable {
		m[t.Name] = t
	}
	return m
}()

// Declarations returns the model-facing tool declarations.
func Declarations() []ToolDecl {
	decls := make([]ToolDecl, len(toolTable))
	for i, t := range toolTable {
		decls[i] = t.ToolDecl
	}
	return decls
}

const maxShortlist = 20

func appendUnique(list []string, id string) []string {
	if id == "" {
		return list
	}
	for _, v := range list {
		if v == id {
			return list
		}
	}
	return append(list, id)
}

func (env *toolEnv) shortlist(id string) {
	if len(env.state.Shortlisted) >= maxShortlist {
		return
	}
	env.state.Shortlisted = appendUnique(env.state.Shortlisted, id)
}

func (env *toolEnv) remember(c planner.Criteria) {
	if c.GuestCount > 0 {
		env.state.GuestCount = c.GuestCount
	}
	if c.Budget > 0 {
		env.state.Budget = c.Budget
	}
	if c.Location != "" {
		env.state.City = c.Location
	}
	if c.Date != "" {
		if d, err := utils.NormalizeDate(c.Date); err == nil {
			env.state.EventDate = d
		}
	}
}

// toPayload converts a tool result into the JSON object handed back to the model.
func toPayload(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return failure(err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{"success": true, "result": string(b)}
	}
	if _, ok := out["success"]; !ok {
		out["success"] = true
	}
	return out
}

// failure turns an error into a structured tool payload. Internal causes are not exposed.
func failure(err error) map[string]any {
	msg := "Something went wrong, please try again"
	var appErr *utils.AppError
	if errors.As(err, &appErr) && appErr.Kind != utils.KindInternal {
		msg = appErr.Message
	}
	return map[string]any{"success": false, "error": msg}
}

// runTool executes one call and always produces a payload for the model.
func runTool(ctx context.Context, env *toolEnv, call ToolCall) (map[string]any, error) {
	t, ok := toolsByName[call.Name]
	if !ok {
		return map[string]any{"success": false, "error": "Unknown tool: " + call.Name}, nil
	}
	res, err := t.run(ctx, env, call.Args)
	if err != nil {
		return failure(err), err
	}
	return toPayload(res), nil
}
