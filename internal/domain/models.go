package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered dashboard user.
type User struct {
	ID           uuid.UUID `db:"id" json:"user_id"`
	LastName     string    `db:"last_name" json:"last_name"`
	FirstName    string    `db:"first_name" json:"first_name"`
	Email        string    `db:"email" json:"email"`
	PhoneNumber  string    `db:"phone_number" json:"phone_number"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	IsStaff      bool      `db:"is_staff" json:"is_staff"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FullName joins first and last name the way the dashboard displays it.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// Zone is a monitored geographic zone (a street address with a radius).
type Zone struct {
	ID        uuid.UUID `db:"id" json:"id"`
	City      string    `db:"city" json:"city"`
	Street    string    `db:"street" json:"street"`
	Number    int       `db:"number" json:"number"`
	Latitude  float64   `db:"latitude" json:"latitude"`
	Longitude float64   `db:"longitude" json:"longitude"`
	RadiusKM  float64   `db:"radius_km" json:"radius_km"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Residents []Resident `db:"-" json:"residents"`
}

// Resident is the public view of a user living in a zone.
type Resident struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
}

// Heatwave is a recorded heatwave episode, optionally tied to a zone.
type Heatwave struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ZoneID      *uuid.UUID `db:"zone_id" json:"zone_id"`
	MaxTempC    float64    `db:"max_temp_c" json:"max_temp_c"`
	Intensity   float64    `db:"intensity" json:"intensity"`
	HumidityPct float64    `db:"humidity_pct" json:"humidity_pct"`
	StartsAt    time.Time  `db:"starts_at" json:"starts_at"`
	EndsAt      time.Time  `db:"ends_at" json:"ends_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Duration is the length of the episode.
func (h *Heatwave) Duration() time.Duration {
	return h.EndsAt.Sub(h.StartsAt)
}

// ActiveAt reports whether the heatwave covers t (bounds inclusive).
func (h *Heatwave) ActiveAt(t time.Time) bool {
	return !t.Before(h.StartsAt) && !t.After(h.EndsAt)
}

// Statistic summarises one heatwave.
type Statistic struct {
	ID           uuid.UUID `db:"id" json:"id"`
	HeatwaveID   uuid.UUID `db:"heatwave_id" json:"heatwave_id"`
	MeanTempC    float64   `db:"mean_temp_c" json:"mean_temp_c"`
	WaveCount    int       `db:"wave_count" json:"wave_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
	HeatwaveMax  float64   `db:"heatwave_max_temp_c" json:"heatwave_max_temp_c"`
	HeatwaveFrom time.Time `db:"heatwave_starts_at" json:"heatwave_starts_at"`
	HeatwaveTo   time.Time `db:"heatwave_ends_at" json:"heatwave_ends_at"`
}

// StatisticsSummary is the global roll-up over all statistics.
type StatisticsSummary struct {
	TotalStatistics  int     `db:"total_statistics" json:"total_statistics"`
	TotalWavesLogged int     `db:"total_waves_logged" json:"total_waves_logged"`
	GlobalMeanTempC  float64 `db:"global_mean_temp_c" json:"global_mean_temp_c"`
	HasStatistics    bool    `db:"-" json:"has_statistics"`
}

// Recommendation is a health recommendation published for a zone.
type Recommendation struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ZoneID      uuid.UUID `db:"zone_id" json:"zone_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Notification is a message sent to a user about a heatwave.
type Notification struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	UserID         uuid.UUID        `db:"user_id" json:"user_id"`
	HeatwaveID     uuid.UUID        `db:"heatwave_id" json:"heatwave_id"`
	Title          string           `db:"title" json:"title"`
	Type           NotificationType `db:"type" json:"type"`
	SentAt         time.Time        `db:"sent_at" json:"sent_at"`
	Read           bool             `db:"is_read" json:"read"`
	Delivery       DeliveryStatus   `db:"delivery_status" json:"delivery_status"`
	DeliveryTries  int              `db:"delivery_attempts" json:"-"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updated_at"`
	RecipientEmail string           `db:"recipient_email" json:"-"`
	RecipientName  string           `db:"recipient_name" json:"-"`
}

// RegionSnapshot is the per-region view rendered into reports.
type RegionSnapshot struct {
	Region          string           `json:"region"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	GeneratedAt     time.Time        `json:"generated_at"`
	MaxTempC        float64          `json:"max_temp_c"`
	HumidityPct     float64          `json:"humidity_pct"`
	Level           AlertLevel       `json:"level"`
	ActiveHeatwaves []Heatwave       `json:"active_heatwaves"`
	Recommendations []Recommendation `json:"recommendations"`
}
