package services

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/adiashrafff-private/calorie-trackerv1/models"
	"github.com/adiashrafff-private/calorie-trackerv1/utils"

	"github.com/google/uuid"
)

// ErrNameRequired is returned by EndDay while the profile has no name; the
// caller collects one and re-invokes.
var ErrNameRequired = errors.New("a profile name is required to end the day")

// LookupFunc resolves a food name to an approximate calorie value,
// nil when the provider has no answer.
type LookupFunc func(food string) (*float64, error)

// pendingInput mirrors one meal card's input boxes. gen bumps on every edit,
// clear and add, so an in-flight lookup can tell whether its target still
// exists by the time the response lands.
type pendingInput struct {
	name     string
	calories string
	gen      uint64
}

// MealInput is the wire shape of a pending input.
type MealInput struct {
	Name     string `json:"name"`
	Calories string `json:"calories"`
}

// TrackerState is the full render model pushed to clients.
type TrackerState struct {
	UserName      string               `json:"userName"`
	Meals         models.Meals         `json:"meals"`
	Inputs        map[string]MealInput `json:"inputs"`
	MealCalories  map[string]int       `json:"mealCalories"`
	TotalCalories int                  `json:"totalCalories"`
	DailyLimit    int                  `json:"dailyLimit"`
	Percent       int                  `json:"percent"`  // unclamped
	Progress      int                  `json:"progress"` // clamped to 100 for the bar
	Difference    int                  `json:"difference"`
	LimitMessage  string               `json:"limitMessage"`
}

// ExportDocument is the downloadable history dump. There is no import side.
type ExportDocument struct {
	UserName   string             `json:"userName,omitempty"`
	DailyLimit int                `json:"dailyLimit"`
	History    []models.DayRecord `json:"history"`
	ExportDate string             `json:"exportDate"`
}

// ProfilePatch updates any subset of profile fields; nil means leave alone.
// Binding tags keep the enums closed at the HTTP boundary.
type ProfilePatch struct {
	Name          *string  `json:"name"`
	Height        *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight        *float64 `json:"weight" binding:"omitempty,gt=0"`
	Age           *int     `json:"age" binding:"omitempty,gt=0"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=male female"`
	ActivityLevel *string  `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate heavy very_intense"`
	Goal          *string  `json:"goal" binding:"omitempty,oneof=surplus deficit"`
	GoalAmount    *int     `json:"goalAmount" binding:"omitempty,gte=0"`
}

// InputPatch updates a meal card's pending input boxes.
type InputPatch struct {
	Name     *string `json:"name"`
	Calories *string `json:"calories"`
}

// TrackerService owns today's meals, the pending inputs, the profile, the
// display name and the archive history. Every mutation mirrors the affected
// record to the store and pushes a fresh state snapshot through broadcast.
//
// The constructor loads everything before returning, so no save can ever run
// ahead of the initial load and clobber stored state with defaults.
type TrackerService struct {
	mu        sync.Mutex
	store     Store
	lookup    LookupFunc
	broadcast func(TrackerState)

	meals      models.Meals
	inputs     map[string]*pendingInput
	profile    models.UserProfile
	history    []models.DayRecord
	userName   string
	dailyLimit int
}

func NewTrackerService(store Store, lookup LookupFunc, broadcast func(TrackerState)) *TrackerService {
	t := &TrackerService{
		store:     store,
		lookup:    lookup,
		broadcast: broadcast,
		meals:     models.NewMeals(),
		inputs:    make(map[string]*pendingInput, len(models.MealTypes)),
		profile:   models.DefaultProfile(),
		history:   []models.DayRecord{},
	}
	for _, mt := range models.MealTypes {
		t.inputs[mt] = &pendingInput{}
	}

	if !t.store.Load(models.KeyProfile, &t.profile) {
		t.profile = models.DefaultProfile()
	}
	if !t.store.Load(models.KeyMeals, &t.meals) || t.meals == nil {
		t.meals = models.NewMeals()
	}
	t.meals.Normalize()
	if !t.store.Load(models.KeyHistory, &t.history) || t.history == nil {
		t.history = []models.DayRecord{}
	}
	if !t.store.Load(models.KeyName, &t.userName) {
		t.userName = ""
	}
	t.dailyLimit = utils.DailyTarget(&t.profile)
	return t
}

// AddItem logs a food under the given category. Name and calories must both
// be present (after trimming) and calories must parse as a non-negative
// integer; anything else is a silent no-op, not an error. On success the
// category's pending input is cleared.
func (t *TrackerService) AddItem(category, name, calories string) (*models.FoodItem, bool) {
	name = strings.TrimSpace(name)
	calories = strings.TrimSpace(calories)
	cal, err := strconv.Atoi(calories)
	if name == "" || calories == "" || err != nil || cal < 0 {
		return nil, false
	}

	t.mu.Lock()
	if !models.IsMealType(category) {
		t.mu.Unlock()
		return nil, false
	}
	item := models.FoodItem{ID: uuid.New().String(), Name: name, Calories: cal}
	t.meals[category] = append(t.meals[category], item)

	in := t.inputs[category]
	in.name, in.calories = "", ""
	in.gen++

	t.store.Save(models.KeyMeals, t.meals)
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.notify(state)
	return &item, true
}

// RemoveItem deletes the item with the given id from the category.
// Unknown category or id is a no-op.
func (t *TrackerService) RemoveItem(category, id string) bool {
	t.mu.Lock()
	items, ok := t.meals[category]
	if !ok {
		t.mu.Unlock()
		return false
	}
	idx := -1
	for i, it := range items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.mu.Unlock()
		return false
	}
	t.meals[category] = append(items[:idx], items[idx+1:]...)

	t.store.Save(models.KeyMeals, t.meals)
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.notify(state)
	return true
}

// ClearAll resets every category and drops the persisted today record.
// The yes/no confirmation gate lives at the HTTP layer.
func (t *TrackerService) ClearAll() {
	t.mu.Lock()
	t.meals = models.NewMeals()
	t.store.Delete(models.KeyMeals)
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.notify(state)
}

// EndDay archives today's meals into history. The working meals are left in
// place afterwards — clearing them is a separate, explicit user action.
func (t *TrackerService) EndDay() (*models.DayRecord, error) {
	t.mu.Lock()
	if strings.TrimSpace(t.profile.Name) == "" {
		t.mu.Unlock()
		return nil, ErrNameRequired
	}

	rec := models.DayRecord{
		Date:          time.Now().Format("January 2, 2006"),
		Meals:         t.meals.Clone(),
		TotalCalories: t.totalLocked(),
	}
	t.history = append(t.history, rec)

	t.store.Save(models.KeyHistory, t.history)
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.notify(state)
	return &rec, nil
}

// UpdateProfile merges the patch into the profile, recomputes the daily
// limit immediately and mirrors the profile (and display name, when it
// changed) to the store.
func (t *TrackerService) UpdateProfile(p ProfilePatch) (models.UserProfile, int) {
	t.mu.Lock()
	if p.Name != nil {
		t.profile.Name = *p.Name
		t.userName = *p.Name
		t.store.Save(models.KeyName, t.userName)
	}
	if p.Height != nil {
		t.profile.Height = *p.Height
	}
	if p.Weight != nil {
		t.profile.Weight = *p.Weight
	}
	if p.Age != nil {
		t.profile.Age = *p.Age
	}
	if p.Gender != nil {
		t.profile.Gender = *p.Gender
	}
	if p.ActivityLevel != nil {
		t.profile.ActivityLevel = *p.ActivityLevel
	}
	if p.Goal != nil {
		t.profile.Goal = *p.Goal
	}
	if p.GoalAmount != nil {
		t.profile.GoalAmount = *p.GoalAmount
	}

	t.dailyLimit = utils.DailyTarget(&t.profile)
	t.store.Save(models.KeyProfile, t.profile)

	profile := t.profile
	limit := t.dailyLimit
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.notify(state)
	return profile, limit
}

// SetInput updates a meal card's pending input. When the name box holds a
// value and the calories box is still empty, a lookup is kicked off in the
// background to pre-fill a suggestion.
func (t *TrackerService) SetInput(category string, p InputPatch) bool {
	t.mu.Lock()
	in, ok := t.inputs[category]
	if !ok {
		t.mu.Unlock()
		return false
	}
	if p.Name != nil {
		in.name = *p.Name
	}
	if p.Calories != nil {
		in.calories = *p.Calories
	}
	in.gen++
	gen := in.gen
	name := strings.TrimSpace(in.name)
	wantLookup := t.lookup != nil && p.Name != nil &&
		name != "" && strings.TrimSpace(in.calories) == ""
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.notify(state)
	if wantLookup {
		go t.resolveCalories(category, name, gen)
	}
	return true
}

func (t *TrackerService) resolveCalories(category, name string, gen uint64) {
	cal, err := t.lookup(name)
	if err != nil {
		log.Printf("Calorie lookup for %q failed: %v", name, err)
		return
	}
	if cal == nil {
		return
	}
	t.applyLookup(category, gen, *cal)
}

// applyLookup writes a lookup result into the pending input, but only if the
// input has not been touched since the lookup started and the calories box
// is still empty. A user-typed value is never overwritten.
func (t *TrackerService) applyLookup(category string, gen uint64, cal float64) bool {
	t.mu.Lock()
	in, ok := t.inputs[category]
	if !ok || in.gen != gen || strings.TrimSpace(in.calories) != "" {
		t.mu.Unlock()
		return false
	}
	in.calories = strconv.Itoa(int(math.Round(cal)))
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.notify(state)
	return true
}

func (t *TrackerService) TotalCalories() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalLocked()
}

func (t *TrackerService) MealCalories(category string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return sumItems(t.meals[category])
}

func (t *TrackerService) Profile() (models.UserProfile, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile, t.dailyLimit
}

func (t *TrackerService) History() []models.DayRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.DayRecord{}, t.history...)
}

func (t *TrackerService) State() TrackerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *TrackerService) Export() ExportDocument {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ExportDocument{
		UserName:   t.userName,
		DailyLimit: t.dailyLimit,
		History:    append([]models.DayRecord{}, t.history...),
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	}
}

func (t *TrackerService) totalLocked() int {
	total := 0
	for _, items := range t.meals {
		total += sumItems(items)
	}
	return total
}

func (t *TrackerService) snapshotLocked() TrackerState {
	total := t.totalLocked()
	perMeal := make(map[string]int, len(models.MealTypes))
	for _, mt := range models.MealTypes {
		perMeal[mt] = sumItems(t.meals[mt])
	}
	inputs := make(map[string]MealInput, len(t.inputs))
	for mt, in := range t.inputs {
		inputs[mt] = MealInput{Name: in.name, Calories: in.calories}
	}

	percent, progress := 0, 0
	if t.dailyLimit > 0 {
		percent = int(math.Round(100 * float64(total) / float64(t.dailyLimit)))
		progress = percent
		if progress > 100 {
			progress = 100
		}
		if progress < 0 {
			progress = 0
		}
	}

	diff := total - t.dailyLimit
	var msg string
	if diff > 0 {
		msg = "+" + strconv.Itoa(diff) + " over"
	} else {
		msg = strconv.Itoa(-diff) + " remaining"
	}

	return TrackerState{
		UserName:      t.userName,
		Meals:         t.meals.Clone(),
		Inputs:        inputs,
		MealCalories:  perMeal,
		TotalCalories: total,
		DailyLimit:    t.dailyLimit,
		Percent:       percent,
		Progress:      progress,
		Difference:    diff,
		LimitMessage:  msg,
	}
}

func (t *TrackerService) notify(state TrackerState) {
	if t.broadcast != nil {
		t.broadcast(state)
	}
}

func sumItems(items []models.FoodItem) int {
	sum := 0
	for _, it := range items {
		sum += it.Calories
	}
	return sum
}
