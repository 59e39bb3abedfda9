/*
NAME
  manip.go

DESCRIPTION
  MANIP-1: manipulation domain codebook (registry ID 0x03).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// MANIP1 is the manipulation domain codebook.
var MANIP1 = &Domain{
	RegistryID: 0x03,
	Name:       "MANIP-1",
	Entries: []DomainEntry{
		// Gripper / End Effector (0x0000-0x001F)
		{0x0000, "GRIPPER_STATE", "UINT8", "", "Gripper open/closed/partial"},
		{0x0001, "GRIPPER_POSITION", "FLOAT16", "", "Normalized gripper aperture"},
		{0x0002, "GRIPPER_FORCE", "FLOAT32", "N", "Applied gripping force"},
		{0x0003, "END_EFFECTOR_TYPE", "UINT8", "", "End effector classification"},
		{0x0004, "END_EFFECTOR_POSE", "STRUCT", "", "End effector pose"},
		{0x0005, "SUCTION_STATE", "BOOL", "", "Vacuum suction active"},
		{0x0006, "SUCTION_PRESSURE", "FLOAT32", "Pa", "Suction pressure reading"},
		{0x0007, "TOOL_ID", "UINT16", "", "Attached tool identifier"},
		{0x0008, "TOOL_CHANGE", "UINT16", "", "Request tool change"},
		{0x0009, "GRASP_DETECTED", "BOOL", "", "Object grasp confirmed"},
		{0x000A, "SLIP_DETECTED", "BOOL", "", "Slip event detected"},
		{0x000B, "FINGER_COUNT", "UINT8", "", "Number of active fingers"},
		{0x000C, "FINGER_POSITIONS", "ARRAY<FLOAT16,N>", "", "Per-finger joint positions"},
		{0x000D, "PAYLOAD_MASS", "FLOAT32", "kg", "Estimated held mass"},

		// Joint Space (0x0020-0x003F)
		{0x0020, "JOINT_POSITIONS", "ARRAY<FLOAT32,N>", "rad", "Joint angle vector"},
		{0x0021, "JOINT_VELOCITIES", "ARRAY<FLOAT32,N>", "rad/s", "Joint velocity vector"},
		{0x0022, "JOINT_TORQUES", "ARRAY<FLOAT32,N>", "Nm", "Joint torque vector"},
		{0x0023, "JOINT_LIMITS", "ARRAY<FLOAT32,2>", "rad", "Min/max joint limit"},
		{0x0024, "JOINT_ID", "UINT8", "", "Joint index"},
		{0x0025, "JOINT_TARGET", "FLOAT32", "rad", "Commanded joint angle"},
		{0x0026, "JOINT_STIFFNESS", "FLOAT32", "Nm/rad", "Joint compliance setting"},
		{0x0027, "JOINT_TEMPERATURE", "FLOAT16", "degC", "Joint motor temperature"},
		{0x0028, "HOME_CONFIGURATION", "ARRAY<FLOAT32,N>", "rad", "Home joint vector"},
		{0x0029, "JOINT_ERROR", "UINT8", "", "Joint fault code"},

		// Cartesian Space (0x0040-0x005F)
		{0x0040, "CARTESIAN_POSE", "STRUCT", "", "End effector Cartesian pose"},
		{0x0041, "CARTESIAN_VELOCITY", "ARRAY<FLOAT32,6>", "m/s,rad/s", "Cartesian twist"},
		{0x0042, "CARTESIAN_FORCE", "ARRAY<FLOAT32,3>", "N", "Cartesian force"},
		{0x0043, "CARTESIAN_TORQUE", "ARRAY<FLOAT32,3>", "Nm", "Cartesian torque"},
		{0x0044, "WORKSPACE_LIMIT", "STRUCT", "", "Reachable workspace bound"},
		{0x0045, "TARGET_POSE", "STRUCT", "", "Commanded Cartesian pose"},
		{0x0046, "APPROACH_VECTOR", "ARRAY<FLOAT32,3>", "", "Approach direction"},
		{0x0047, "OFFSET_POSE", "STRUCT", "", "Relative pose offset"},
		{0x0048, "TRAJECTORY", "LIST<CARTESIAN_POSE>", "", "Cartesian trajectory"},

		// Grasp Planning (0x0060-0x007F)
		{0x0060, "GRASP_CANDIDATE", "STRUCT", "", "Candidate grasp pose+score"},
		{0x0061, "GRASP_LIST", "LIST<GRASP_CANDIDATE>", "", "Ranked grasp candidates"},
		{0x0062, "GRASP_SCORE", "FLOAT16", "", "Grasp quality score"},
		{0x0063, "GRASP_TYPE", "UINT8", "", "Grasp taxonomy code"},
		{0x0064, "GRASP_WIDTH", "FLOAT32", "m", "Required gripper width"},
		{0x0065, "GRASP_APPROACH", "ARRAY<FLOAT32,3>", "", "Approach vector for grasp"},
		{0x0066, "GRASP_EXECUTE", "GRASP_CANDIDATE", "", "Execute selected grasp"},
		{0x0067, "GRASP_RESULT", "UINT8", "", "Outcome of grasp attempt"},
		{0x0068, "REGRASP_REQUEST", "NONE", "", "Request re-grasp"},
		{0x0069, "PLACE_TARGET", "STRUCT", "", "Target pose for placement"},
		{0x006A, "PLACE_RESULT", "UINT8", "", "Outcome of place attempt"},

		// Manipulation Actions (0x0080-0x009F)
		{0x0080, "PICK", "STRUCT{object_id}", "", "Pick up object"},
		{0x0081, "PLACE", "STRUCT{pose}", "", "Place held object"},
		{0x0082, "PUSH", "STRUCT{vector}", "", "Push object along vector"},
		{0x0083, "PULL", "STRUCT{vector}", "", "Pull object along vector"},
		{0x0084, "ROTATE_OBJECT", "FLOAT32", "rad", "Rotate held object"},
		{0x0085, "INSERT", "STRUCT{target}", "", "Insert into target"},
		{0x0086, "EXTRACT", "STRUCT{target}", "", "Extract from target"},
		{0x0087, "OPEN_GRIPPER", "NONE", "", "Open gripper fully"},
		{0x0088, "CLOSE_GRIPPER", "NONE", "", "Close gripper fully"},
		{0x0089, "MOVE_TO", "CARTESIAN_POSE", "", "Move end effector to pose"},
		{0x008A, "HANDOVER", "STRUCT{to_agent}", "", "Hand object to another agent"},
		{0x008B, "STACK", "STRUCT{target}", "", "Stack object on target"},
		{0x008C, "UNSTACK", "NONE", "", "Remove top object from stack"},
		{0x008D, "WIPE", "STRUCT{path}", "", "Wiping motion along path"},
		{0x008E, "ASSEMBLE", "STRUCT{parts}", "", "Assemble parts"},
		{0x008F, "ABORT_MANIPULATION", "NONE", "", "Abort current manipulation"},

		// Contact / Force Control (0x00A0-0x00AF)
		{0x00A0, "CONTACT_DETECTED", "BOOL", "", "Contact sensed"},
		{0x00A1, "CONTACT_FORCE", "FLOAT32", "N", "Measured contact force"},
		{0x00A2, "FORCE_LIMIT", "FLOAT32", "N", "Max allowed contact force"},
		{0x00A3, "COMPLIANCE_MODE", "UINT8", "", "Force-control mode"},
		{0x00A4, "IMPEDANCE_PARAMS", "STRUCT", "", "Impedance controller params"},
		{0x00A5, "TACTILE_READING", "ARRAY<FLOAT16,N>", "", "Tactile sensor array"},
		{0x00A6, "FORCE_TORQUE_SENSOR", "ARRAY<FLOAT32,6>", "N,Nm", "Wrist F/T sensor"},
		{0x00A7, "CONTACT_POINT", "ARRAY<FLOAT32,3>", "m", "Estimated contact location"},

		// Deformable Object Handling (0x00B0-0x00BF)
		{0x00B0, "DEFORMABLE_OBJECT", "STRUCT", "", "Deformable object descriptor"},
		{0x00B1, "DEFORMATION_STATE", "BYTES", "", "Encoded deformation mesh"},
		{0x00B2, "FOLD", "STRUCT{line}", "", "Fold action along line"},
		{0x00B3, "STRETCH", "STRUCT{vector}", "", "Stretch deformable object"},
		{0x00B4, "CUT", "STRUCT{path}", "", "Cut along path"},
		{0x00B5, "TIE", "STRUCT{points}", "", "Tie at points"},
		{0x00B6, "TENSION", "FLOAT32", "N", "Applied tension"},
	},
}
