package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/sarilacivert/matchcenter-service/config"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const summaryCheckQueue = "summary-check"

// TaskClient schedules delayed summary checks through Google Cloud Tasks.
// The created task calls back the trigger endpoint of this service.
type TaskClient struct {
	client *cloudtasks.Client
	config config.GoogleCloud
}

func NewTaskClient(config config.GoogleCloud, client *cloudtasks.Client) *TaskClient {
	return &TaskClient{config: config, client: client}
}

type summaryCheckBody struct {
	MatchID string `json:"match_id"`
	Attempt uint   `json:"attempt"`
}

func (c *TaskClient) ScheduleSummaryCheck(ctx context.Context, matchID string, attempt uint, scheduleAt time.Time) (*Task, error) {
	body, err := json.Marshal(summaryCheckBody{MatchID: matchID, Attempt: attempt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary check task body: %w", err)
	}

	request := cloudtaskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task: &cloudtaskspb.Task{
			Name:         c.taskName(matchID, attempt),
			ScheduleTime: timestamppb.New(scheduleAt),
			MessageType: &cloudtaskspb.Task_HttpRequest{
				HttpRequest: &cloudtaskspb.HttpRequest{
					Url:        c.config.TasksBaseURL + "/v1/triggers/summary_check",
					HttpMethod: cloudtaskspb.HttpMethod_POST,
					Headers:    map[string]string{"Content-Type": "application/json"},
					Body:       body,
					AuthorizationHeader: &cloudtaskspb.HttpRequest_OidcToken{
						OidcToken: &cloudtaskspb.OidcToken{Audience: c.config.TasksBaseURL},
					},
				},
			},
		},
	}

	task, err := c.client.CreateTask(ctx, &request)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary check task: %w", err)
	}

	return &Task{Name: task.GetName(), ExecuteAt: task.GetScheduleTime().AsTime()}, nil
}

func (c *TaskClient) GetSummaryCheckTask(ctx context.Context, matchID string, attempt uint) (*Task, error) {
	task, err := c.client.GetTask(ctx, &cloudtaskspb.GetTaskRequest{Name: c.taskName(matchID, attempt)})
	if err != nil {
		return nil, fmt.Errorf("failed to get summary check task: %w", err)
	}

	return &Task{Name: task.GetName(), ExecuteAt: task.GetScheduleTime().AsTime()}, nil
}

func (c *TaskClient) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", c.config.ProjectID, c.config.Region, summaryCheckQueue)
}

func (c *TaskClient) taskName(matchID string, attempt uint) string {
	return fmt.Sprintf("%s/tasks/%s-%d", c.queuePath(), matchID, attempt)
}
