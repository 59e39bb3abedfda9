/*
NAME
  nav.go

DESCRIPTION
  NAV-1: navigation domain codebook (registry ID 0x01).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// NAV1 is the navigation domain codebook.
var NAV1 = &Domain{
	RegistryID: 0x01,
	Name:       "NAV-1",
	Entries: []DomainEntry{
		// Coordinate and Pose (0x0000-0x002F)
		{0x0000, "POSITION_3D", "ARRAY<FLOAT32,3>", "m", "3D position (x, y, z)"},
		{0x0001, "POSITION_2D", "ARRAY<FLOAT32,2>", "m", "2D position (x, y)"},
		{0x0002, "HEADING", "FLOAT32", "rad", "Heading angle from North"},
		{0x0003, "ORIENTATION_QUAT", "ARRAY<FLOAT32,4>", "", "Quaternion (w, x, y, z)"},
		{0x0004, "ORIENTATION_EULER", "ARRAY<FLOAT32,3>", "rad", "Euler angles (roll, pitch, yaw)"},
		{0x0005, "VELOCITY_3D", "ARRAY<FLOAT32,3>", "m/s", "Linear velocity vector"},
		{0x0006, "VELOCITY_SCALAR", "FLOAT32", "m/s", "Scalar speed"},
		{0x0007, "ANGULAR_VEL", "ARRAY<FLOAT32,3>", "rad/s", "Angular velocity"},
		{0x0008, "ACCELERATION_3D", "ARRAY<FLOAT32,3>", "m/s^2", "Linear acceleration"},
		{0x0009, "POSE_6DOF", "STRUCT{pos,orient}", "", "Full 6DOF pose"},
		{0x000A, "LATITUDE", "FLOAT64", "deg", "WGS84 latitude"},
		{0x000B, "LONGITUDE", "FLOAT64", "deg", "WGS84 longitude"},
		{0x000C, "ALTITUDE_MSL", "FLOAT32", "m", "Altitude above mean sea level"},
		{0x000D, "ALTITUDE_AGL", "FLOAT32", "m", "Altitude above ground level"},
		{0x000E, "GPS_FIX", "STRUCT", "", "Complete GPS fix record"},
		{0x000F, "COORDINATE_FRAME", "UINT8", "", "Coord frame ID"},

		// Waypoint and Path (0x0030-0x005F)
		{0x0030, "WAYPOINT", "STRUCT{id,pos,rad}", "", "Named waypoint"},
		{0x0031, "WAYPOINT_ID", "UINT16", "", "Waypoint identifier"},
		{0x0032, "PATH", "LIST<WAYPOINT>", "", "Ordered waypoint sequence"},
		{0x0033, "PATH_SEGMENT", "STRUCT", "", "Segment with curvature"},
		{0x0034, "CURRENT_WAYPOINT", "UINT16", "", "Current target waypoint index"},
		{0x0035, "DISTANCE_TO_WP", "FLOAT32", "m", "Distance to current waypoint"},
		{0x0036, "ETA", "FLOAT32", "s", "Estimated time of arrival"},
		{0x0037, "PATH_COMPLETE", "BOOL", "", "Path completion flag"},
		{0x0038, "PATH_DEVIATION", "FLOAT32", "m", "Cross-track error"},
		{0x0039, "GEOFENCE", "LIST<POSITION_2D>", "", "Restricted area polygon"},
		{0x003A, "GEOFENCE_STATUS", "UINT8", "", "Geofence relation status"},
		{0x003B, "HOME_POSITION", "POSITION_3D", "m", "Designated home position"},

		// Obstacle and Environment (0x0060-0x008F)
		{0x0060, "OBSTACLE", "STRUCT", "", "Detected obstacle"},
		{0x0061, "OBSTACLE_TYPE", "UINT8", "", "Obstacle classification"},
		{0x0062, "OBSTACLE_SIZE", "ARRAY<FLOAT32,3>", "m", "Bounding box dimensions"},
		{0x0063, "OBSTACLE_LIST", "LIST<OBSTACLE>", "", "Collection of obstacles"},
		{0x0064, "CLEARANCE", "FLOAT32", "m", "Min clearance to nearest obstacle"},
		{0x0065, "COLLISION_RISK", "FLOAT16", "", "Collision probability 0.0-1.0"},
		{0x0066, "TERRAIN_TYPE", "UINT8", "", "Surface type code"},
		{0x0067, "SLOPE_ANGLE", "FLOAT16", "rad", "Ground slope"},
		{0x0068, "VISIBILITY", "FLOAT32", "m", "Visibility range"},
		{0x0069, "OCCUPANCY_GRID", "STRUCT", "", "2D occupancy grid map"},

		// Motion Commands (0x0090-0x00BF)
		{0x0090, "GOTO", "POSITION_3D", "m", "Navigate to position"},
		{0x0091, "GOTO_WAYPOINT", "UINT16", "", "Navigate to waypoint ID"},
		{0x0092, "FOLLOW_PATH", "PATH", "", "Execute path"},
		{0x0093, "STOP", "NONE", "", "Halt all movement"},
		{0x0094, "HOLD_POSITION", "NONE", "", "Station-keeping"},
		{0x0095, "SET_VELOCITY", "VELOCITY_3D", "m/s", "Set desired velocity"},
		{0x0096, "SET_HEADING", "FLOAT32", "rad", "Turn to heading"},
		{0x0097, "ORBIT", "STRUCT", "", "Orbit a point"},
		{0x0098, "FOLLOW_AGENT", "STRUCT{uuid,dist}", "", "Follow another agent"},
		{0x0099, "RETURN_HOME", "NONE", "", "Navigate to home"},
		{0x009A, "AVOID", "STRUCT{pos,radius}", "", "Add exclusion zone"},
		{0x009B, "FORMATION", "STRUCT{type,slot}", "", "Join formation"},
	},
}
