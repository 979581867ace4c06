package tavern

import (
	"encoding/json"
	"time"

	"github.com/duskmantle/tavernsim/internal/models"
)

const (
	TopicCustomerEvents = "customer_events"
	TopicServiceEvents  = "service_events"
	TopicEconomyEvents  = "economy_events"
	TopicDaySummaries   = "day_summaries"

	EventCustomerArrived  = "CustomerArrived"
	EventCustomerDeparted = "CustomerDeparted"
	EventDishServed       = "DishServed"
	EventLogLine          = "LogLine"
	EventResourceBought   = "ResourceBought"
	EventUpgradeBought    = "UpgradeBought"
	EventDailyEvent       = "DailyEvent"
	EventDaySummary       = "DaySummary"
)

// BaseEvent is the common envelope for every streamed record.
type BaseEvent struct {
	Timestamp int64   `json:"timestamp"`
	EventType string  `json:"eventType"`
	Tavern    string  `json:"tavern,omitempty"`
	Day       int     `json:"day"`
	DayTime   float64 `json:"dayTime"`
}

type CustomerEvent struct {
	BaseEvent
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	HeroClass  string `json:"heroClass"`
	Status     string `json:"status"`
	SeatIndex  int    `json:"seatIndex"`
}

type ServiceEvent struct {
	BaseEvent
	CustomerID string `json:"customerId,omitempty"`
	ItemID     string `json:"itemId,omitempty"`
	ItemName   string `json:"itemName,omitempty"`
	Price      int    `json:"price,omitempty"`
	Message    string `json:"message,omitempty"`
}

type EconomyEvent struct {
	BaseEvent
	Resource  string `json:"resource,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	Cost      int    `json:"cost,omitempty"`
	UpgradeID string `json:"upgradeId,omitempty"`
	EventID   string `json:"eventId,omitempty"`
	Gold      int    `json:"gold"`
	Fame      int    `json:"fame"`
}

// DaySummaryEvent is also the row schema for the parquet daily reports.
type DaySummaryEvent struct {
	Timestamp       int64  `json:"timestamp" parquet:"name=timestamp, type=INT64"`
	EventType       string `json:"eventType" parquet:"name=eventType, type=BYTE_ARRAY, convertedtype=UTF8"`
	Tavern          string `json:"tavern,omitempty" parquet:"name=tavern, type=BYTE_ARRAY, convertedtype=UTF8"`
	Day             int32  `json:"day" parquet:"name=day, type=INT32"`
	Gold            int64  `json:"gold" parquet:"name=gold, type=INT64"`
	Fame            int32  `json:"fame" parquet:"name=fame, type=INT32"`
	CustomersServed int32  `json:"customersServed" parquet:"name=customersServed, type=INT32"`
	CustomersLost   int32  `json:"customersLost" parquet:"name=customersLost, type=INT32"`
	Revenue         int64  `json:"revenue" parquet:"name=revenue, type=INT64"`
}

// EventMessage pairs a serialized record with its destination topic.
type EventMessage struct {
	Topic   string
	Message []byte
}

func (t *Tavern) baseEvent(eventType string, s *models.GameState) BaseEvent {
	return BaseEvent{
		Timestamp: time.Now().Unix(),
		EventType: eventType,
		Tavern:    t.Config.TavernName,
		Day:       s.Day,
		DayTime:   s.DayTime,
	}
}

func (t *Tavern) emit(topic string, record any) {
	if t.output == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := t.output.WriteMessage(topic, data); err != nil {
		t.reportWriteError(topic, err)
	}
}
