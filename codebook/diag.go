/*
NAME
  diag.go

DESCRIPTION
  DIAG-1: diagnostics domain codebook (registry ID 0x05).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// DIAG1 is the diagnostics domain codebook.
var DIAG1 = &Domain{
	RegistryID: 0x05,
	Name:       "DIAG-1",
	Entries: []DomainEntry{
		// Power / Energy (0x0000-0x001F)
		{0x0000, "BATTERY_LEVEL", "FLOAT16", "%", "State of charge"},
		{0x0001, "BATTERY_VOLTAGE", "FLOAT32", "V", "Battery terminal voltage"},
		{0x0002, "BATTERY_CURRENT", "FLOAT32", "A", "Battery current draw"},
		{0x0003, "BATTERY_TEMPERATURE", "FLOAT16", "degC", "Battery temperature"},
		{0x0004, "POWER_CONSUMPTION", "FLOAT32", "W", "Instantaneous power draw"},
		{0x0005, "CHARGING_STATE", "UINT8", "", "Charging status code"},
		{0x0006, "TIME_REMAINING", "FLOAT32", "s", "Estimated runtime remaining"},
		{0x0007, "ENERGY_CONSUMED", "FLOAT32", "Wh", "Cumulative energy used"},
		{0x0008, "SOLAR_INPUT", "FLOAT32", "W", "Solar charging input"},
		{0x0009, "POWER_MODE", "UINT8", "", "Active power mode"},

		// Compute / Memory (0x0020-0x003F)
		{0x0020, "CPU_LOAD", "FLOAT16", "%", "CPU utilization"},
		{0x0021, "MEMORY_USED", "UINT32", "bytes", "Resident memory used"},
		{0x0022, "MEMORY_TOTAL", "UINT32", "bytes", "Total available memory"},
		{0x0023, "DISK_USED", "UINT64", "bytes", "Storage used"},
		{0x0024, "DISK_TOTAL", "UINT64", "bytes", "Total storage"},
		{0x0025, "CPU_TEMPERATURE", "FLOAT16", "degC", "CPU die temperature"},
		{0x0026, "PROCESS_COUNT", "UINT16", "", "Running process count"},
		{0x0027, "UPTIME", "UINT64", "s", "System uptime"},
		{0x0028, "CLOCK_SPEED", "FLOAT32", "GHz", "CPU clock frequency"},
		{0x0029, "GPU_LOAD", "FLOAT16", "%", "GPU utilization"},

		// Communication Health (0x0040-0x004F)
		{0x0040, "PACKET_LOSS", "FLOAT16", "%", "Observed packet loss rate"},
		{0x0041, "RETRY_COUNT", "UINT32", "", "Cumulative retry count"},
		{0x0042, "LINK_UP", "BOOL", "", "Link status"},
		{0x0043, "RSSI", "FLOAT16", "dBm", "Received signal strength"},
		{0x0044, "THROUGHPUT", "FLOAT32", "bps", "Measured throughput"},
		{0x0045, "CONNECTION_COUNT", "UINT16", "", "Active connection count"},
		{0x0046, "LAST_CONTACT", "UINT64", "us", "Timestamp of last contact"},

		// System Status (0x0060-0x007F)
		{0x0060, "SYSTEM_HEALTH", "UINT8", "", "Overall health code"},
		{0x0061, "ERROR_CODE", "UINT32", "", "Last error code"},
		{0x0062, "ERROR_LOG", "LIST<UINT32>", "", "Recent error codes"},
		{0x0063, "WARNING_FLAGS", "UINT32", "", "Active warning bitmask"},
		{0x0064, "SELF_TEST_RESULT", "UINT8", "", "Self-test outcome"},
		{0x0065, "FIRMWARE_VERSION", "ARRAY<UINT16,3>", "", "Firmware version triple"},
		{0x0066, "REBOOT_COUNT", "UINT32", "", "Cumulative reboot count"},
		{0x0067, "WATCHDOG_TRIGGERED", "BOOL", "", "Watchdog reset flag"},
		{0x0068, "LOG_LEVEL", "UINT8", "", "Active log verbosity"},
		{0x0069, "CALIBRATION_STATUS", "UINT8", "", "Sensor calibration state"},
		{0x006A, "MAINTENANCE_DUE", "BOOL", "", "Scheduled maintenance due"},
		{0x006B, "DIAGNOSTIC_REQUEST", "NONE", "", "Request full diagnostics"},
	},
}
