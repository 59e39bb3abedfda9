/*
NAME
  safety.go

DESCRIPTION
  SAFETY-1: safety domain codebook (registry ID 0x07).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// SAFETY1 is the safety domain codebook.
var SAFETY1 = &Domain{
	RegistryID: 0x07,
	Name:       "SAFETY-1",
	Entries: []DomainEntry{
		// Emergency Levels / Alerts (0x0000-0x001F)
		{0x0000, "EMERGENCY_STOP", "NONE", "", "Immediate emergency stop"},
		{0x0001, "EMERGENCY_LEVEL", "UINT8", "", "Emergency severity level"},
		{0x0002, "ALERT", "STRUCT{level,message}", "", "Alert notification"},
		{0x0003, "ALERT_ACK", "UINT32", "", "Acknowledge alert"},
		{0x0004, "ALERT_CLEAR", "UINT32", "", "Clear alert"},
		{0x0005, "CRITICAL_FAILURE", "STRUCT", "", "Critical failure report"},
		{0x0006, "WARNING_LEVEL", "UINT8", "", "Warning severity level"},
		{0x0007, "HAZARD_DETECTED", "STRUCT", "", "Detected hazard record"},
		{0x0008, "SAFE_STATE", "NONE", "", "Enter safe state"},
		{0x0009, "RESUME_OPERATION", "NONE", "", "Resume from safe state"},
		{0x000A, "EMERGENCY_BROADCAST", "STRUCT", "", "Broadcast emergency to all"},

		// Human Safety (0x0020-0x003F)
		{0x0020, "HUMAN_DETECTED", "BOOL", "", "Human presence detected"},
		{0x0021, "HUMAN_DISTANCE", "FLOAT32", "m", "Distance to nearest human"},
		{0x0022, "HUMAN_COUNT", "UINT16", "", "Number of humans detected"},
		{0x0023, "SAFETY_ZONE_VIOLATION", "STRUCT", "", "Safety zone breach"},
		{0x0024, "SPEED_LIMIT_ZONE", "FLOAT32", "m/s", "Speed cap in current zone"},
		{0x0025, "COLLISION_IMMINENT", "NONE", "", "Imminent collision warning"},
		{0x0026, "PROTECTIVE_STOP", "NONE", "", "Protective stop triggered"},
		{0x0027, "HUMAN_INTENT", "UINT8", "", "Predicted human intent code"},
		{0x0028, "PPE_DETECTED", "BOOL", "", "Personal protective equipment seen"},
		{0x0029, "WORKSPACE_CLEAR", "BOOL", "", "Workspace clear confirmation"},
		{0x002A, "OPERATOR_PRESENT", "BOOL", "", "Human operator present"},
		{0x002B, "HANDOVER_SAFE", "BOOL", "", "Safe to hand object to human"},
		{0x002C, "SAFETY_INTERLOCK", "BOOL", "", "Interlock engaged state"},

		// Fault and Failure (0x0040-0x004F)
		{0x0040, "FAULT_CODE", "UINT32", "", "Fault code"},
		{0x0041, "FAULT_SEVERITY", "UINT8", "", "Fault severity level"},
		{0x0042, "FAULT_CLEARED", "UINT32", "", "Fault cleared notification"},
		{0x0043, "SENSOR_FAILURE", "UINT16", "", "Failed sensor identifier"},
		{0x0044, "ACTUATOR_FAILURE", "UINT16", "", "Failed actuator identifier"},
		{0x0045, "COMMUNICATION_LOSS", "NONE", "", "Communication link lost"},
		{0x0046, "POWER_FAILURE", "NONE", "", "Power failure detected"},
		{0x0047, "SOFTWARE_FAULT", "STRUCT", "", "Software fault report"},
		{0x0048, "REDUNDANCY_LOST", "UINT8", "", "Redundant system lost"},
		{0x0049, "FAILSAFE_ACTIVATED", "NONE", "", "Failsafe mode activated"},
		{0x004A, "DIAGNOSTIC_FAULT", "UINT32", "", "Diagnostic subsystem fault"},
		{0x004B, "CALIBRATION_FAULT", "UINT16", "", "Calibration failure"},
		{0x004C, "OVERHEAT", "STRUCT{component,temp}", "", "Overheat condition"},
		{0x004D, "OVERCURRENT", "STRUCT{component,amps}", "", "Overcurrent condition"},

		// Geofence and Regulatory (0x0060-0x006F)
		{0x0060, "GEOFENCE_BREACH", "STRUCT", "", "Geofence breach event"},
		{0x0061, "ALTITUDE_LIMIT", "FLOAT32", "m", "Regulatory altitude ceiling"},
		{0x0062, "NO_FLY_ZONE", "STRUCT", "", "No-fly zone polygon"},
		{0x0063, "REGULATORY_MODE", "UINT8", "", "Active regulatory mode"},
		{0x0064, "PERMIT_ID", "UINT32", "", "Operating permit identifier"},
		{0x0065, "CURFEW_ACTIVE", "BOOL", "", "Operating curfew in effect"},
		{0x0066, "NOISE_LIMIT", "FLOAT32", "dB", "Regulatory noise ceiling"},
		{0x0067, "RESTRICTED_AREA", "STRUCT", "", "Restricted area descriptor"},
		{0x0068, "COMPLIANCE_CHECK", "NONE", "", "Request compliance check"},
		{0x0069, "COMPLIANCE_STATUS", "UINT8", "", "Compliance check result"},
		{0x006A, "AUTHORIZATION_REQUIRED", "NONE", "", "Action requires authorization"},
		{0x006B, "AUTHORIZATION_GRANTED", "UUID", "", "Authorization grant reference"},
		{0x006C, "AUTHORIZATION_DENIED", "UUID", "", "Authorization denial reference"},

		// Safety Monitoring (0x0080-0x008F)
		{0x0080, "MONITOR_START", "NONE", "", "Start safety monitoring"},
		{0x0081, "MONITOR_STOP", "NONE", "", "Stop safety monitoring"},
		{0x0082, "SAFETY_SCORE", "FLOAT16", "", "Aggregate safety score"},
		{0x0083, "RISK_ASSESSMENT", "STRUCT", "", "Risk assessment record"},
		{0x0084, "NEAR_MISS", "STRUCT", "", "Near-miss event report"},
		{0x0085, "INCIDENT_REPORT", "STRUCT", "", "Incident report record"},
		{0x0086, "SAFETY_AUDIT", "NONE", "", "Trigger safety audit"},
		{0x0087, "THRESHOLD_EXCEEDED", "STRUCT{metric,value}", "", "Threshold exceedance"},
		{0x0088, "SAFETY_MARGIN", "FLOAT16", "", "Remaining safety margin"},
		{0x0089, "ANOMALY_DETECTED", "STRUCT", "", "Behavioral anomaly detected"},
		{0x008A, "SAFE_DISTANCE", "FLOAT32", "m", "Required safe distance"},
		{0x008B, "SAFETY_OVERRIDE", "STRUCT{reason}", "", "Manual safety override"},
	},
}
