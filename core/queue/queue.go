package queue

import (
	"context"
	"encoding/json"
	"time"

	"guestdesk/core/constants"
	"guestdesk/core/logger"
	"guestdesk/core/utils"

	"github.com/hibiken/asynq"
)

// TaskAssignedPayload is the outbound event emitted when a task gets assigned.
type TaskAssignedPayload struct {
	RecipientEmail  string     `json:"recipient_email"`
	RecipientName   string     `json:"recipient_name"`
	TaskTitle       string     `json:"task_title"`
	TaskDescription string     `json:"task_description"`
	Deadline        *time.Time `json:"deadline"`
	AssignerName    string     `json:"assigner_name"`
}

// Notifier is the outbound side channel consumed by the task board. Emission is
// best-effort: implementations log failures and never return them to the caller.
type Notifier interface {
	NotifyTaskAssigned(ctx context.Context, payload TaskAssignedPayload)
}

type QueueConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type Client struct {
	client *asynq.Client
}

func NewClient(config QueueConfig) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	return &Client{client: client}
}

func (c *Client) NotifyTaskAssigned(ctx context.Context, payload TaskAssignedPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Queue:NotifyTaskAssigned:Marshal", err)
		return
	}

	task := asynq.NewTask(constants.TaskTypeTaskAssignedEmail, data)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.QueueMail),
		asynq.MaxRetry(3),
	)
	if err != nil {
		// Mail outages must never fail the task write.
		logger.Error("Queue:NotifyTaskAssigned:Enqueue", err)
		return
	}
	logger.Info("Queue:NotifyTaskAssigned:Enqueued", "task_id", info.ID, "recipient", payload.RecipientEmail)
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Worker consumes queued mail tasks.
type Worker struct {
	server *asynq.Server
}

func NewWorker(config QueueConfig) *Worker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				constants.QueueMail:    5,
				constants.QueueDefault: 1,
			},
		},
	)
	return &Worker{server: server}
}

func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskTypeTaskAssignedEmail, handleTaskAssignedEmail)
	return w.server.Start(mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func handleTaskAssignedEmail(ctx context.Context, t *asynq.Task) error {
	var payload TaskAssignedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("Queue:HandleTaskAssignedEmail:Unmarshal", err)
		return err
	}

	err := utils.SendTaskAssignedMail(payload.RecipientEmail, utils.TaskAssignedMailData{
		RecipientName: payload.RecipientName,
		TaskTitle:     payload.TaskTitle,
		Description:   payload.TaskDescription,
		Deadline:      payload.Deadline,
		AssignerName:  payload.AssignerName,
	})
	if err != nil {
		logger.Error("Queue:HandleTaskAssignedEmail:Send", "recipient", payload.RecipientEmail, "error", err)
		return err
	}

	logger.Info("Queue:HandleTaskAssignedEmail:Sent", "recipient", payload.RecipientEmail, "task_title", payload.TaskTitle)
	return nil
}
