/*
NAME
  plan.go

DESCRIPTION
  PLAN-1: task planning domain codebook (registry ID 0x06).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// PLAN1 is the task planning domain codebook.
var PLAN1 = &Domain{
	RegistryID: 0x06,
	Name:       "PLAN-1",
	Entries: []DomainEntry{
		{0x0000, "TASK", "STRUCT", "", "Task record"},
		{0x0001, "TASK_ID", "UINT32", "", "Task identifier"},
		{0x0002, "TASK_STATUS", "UINT8", "", "Task status code"},
		{0x0003, "TASK_PRIORITY", "UINT8", "", "Task priority level"},
		{0x0004, "TASK_DEADLINE", "UINT64", "us", "Task deadline timestamp"},
		{0x0005, "TASK_PROGRESS", "FLOAT16", "%", "Fractional task progress"},
		{0x0006, "SUBTASK", "STRUCT", "", "Subtask record"},
		{0x0007, "TASK_DEPENDENCY", "UINT32", "", "Dependency task ID"},
		{0x0008, "GOAL", "STRUCT", "", "Goal specification"},
		{0x0009, "GOAL_STATUS", "UINT8", "", "Goal status code"},
		{0x000A, "PLAN", "LIST<TASK>", "", "Ordered task sequence"},
		{0x000B, "PLAN_COST", "FLOAT32", "", "Estimated plan cost"},
		{0x000C, "PLAN_DURATION", "FLOAT32", "s", "Estimated plan duration"},
		{0x000D, "ALLOCATE_TASK", "STRUCT{task_id,agent}", "", "Assign task to agent"},
		{0x000E, "RELEASE_TASK", "UINT32", "", "Release task allocation"},
		{0x000F, "REPLAN_REQUEST", "NONE", "", "Request re-planning"},
		{0x0010, "RESOURCE", "STRUCT", "", "Resource descriptor"},
		{0x0011, "RESOURCE_CONFLICT", "STRUCT", "", "Resource conflict record"},
		{0x0012, "AUCTION_BID", "STRUCT{task_id,cost}", "", "Bid in task auction"},
		{0x0013, "AUCTION_AWARD", "STRUCT{task_id,agent}", "", "Auction award result"},
	},
}
