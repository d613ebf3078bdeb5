package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"

	"lg/diet-maker-go-api/diet"
)

// Tool names accepted by POST /mcp.
const (
	toolListDietPlans  = "list_diet_plans"
	toolGetDietPlan    = "get_diet_plan"
	toolProfileSummary = "profile_summary"
)

// getDietPlanParams are the arguments of get_diet_plan. Category is
// optional; when set only that bucket is returned.
type getDietPlanParams struct {
	DietType string `json:"diet_type"`
	Category string `json:"category,omitempty"`
}

// errToolParams marks a tool failure caused by the caller's arguments.
var errToolParams = errors.New("invalid tool arguments")

// extractParams converts the request's argument map into target by
// round-tripping through JSON.
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: marshal arguments: %v", errToolParams, err)
	}
	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: %v", errToolParams, err)
	}
	return nil
}

// textResult wraps data as a single JSON text content block.
func textResult(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}

// handleToolCall dispatches a CallToolRequest to the diet model.
// POST /mcp. Unknown tools get 404, bad arguments 400.
func (h *Handler) handleToolCall(c *gin.Context) {
	var req protocol.CallToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		result *protocol.CallToolResult
		err    error
	)
	switch req.Name {
	case toolListDietPlans:
		result, err = textResult(dietPlanSummaries())
	case toolGetDietPlan:
		result, err = h.callGetDietPlan(&req)
	case toolProfileSummary:
		result, err = h.callProfileSummary(&req)
	default:
		apiError(c, http.StatusNotFound, fmt.Sprintf("unknown tool: %s", req.Name))
		return
	}

	if err != nil {
		if errors.Is(err, errToolParams) {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[mcp] %s failed: %v", req.Name, err)
		apiError(c, http.StatusInternalServerError, "tool call failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) callGetDietPlan(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params getDietPlanParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	pt, ok := diet.ParsePlanType(params.DietType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown diet_type %q", errToolParams, params.DietType)
	}
	plan, err := diet.Build(pt)
	if err != nil {
		return nil, err
	}

	if params.Category != "" {
		return textResult(plan.MealsByCategory(diet.Category(params.Category)))
	}
	return textResult(plan)
}

func (h *Handler) callProfileSummary(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params profileSummaryRequest
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errToolParams, err)
	}
	p := params.buildProfile()
	if err := checkFinite(p); err != nil {
		return nil, fmt.Errorf("%w: %v", errToolParams, err)
	}
	return textResult(newProfileSummary(p, params.DailyCalorieGoal != nil))
}
