/*
NAME
  comm.go

DESCRIPTION
  COMM-1: communication domain codebook (registry ID 0x04).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// COMM1 is the communication domain codebook.
var COMM1 = &Domain{
	RegistryID: 0x04,
	Name:       "COMM-1",
	Entries: []DomainEntry{
		// Agent Identity / Discovery (0x0000-0x001F)
		{0x0000, "AGENT_ID", "UUID", "", "Unique agent identifier"},
		{0x0001, "AGENT_NAME", "STRING", "", "Human-readable agent name"},
		{0x0002, "AGENT_TYPE", "UINT16", "", "Agent class/type code"},
		{0x0003, "AGENT_CAPABILITIES", "LIST<UINT16>", "", "Supported capability codes"},
		{0x0004, "AGENT_STATUS", "UINT8", "", "Online/offline/busy code"},
		{0x0005, "DISCOVER_REQUEST", "NONE", "", "Request peer discovery"},
		{0x0006, "DISCOVER_RESPONSE", "STRUCT", "", "Discovery reply record"},
		{0x0007, "AGENT_VERSION", "ARRAY<UINT16,2>", "", "Protocol/firmware version"},
		{0x0008, "AGENT_LOCATION", "POSITION_3D", "m", "Agent's reported location"},
		{0x0009, "TEAM_ID", "UINT16", "", "Team/fleet membership"},
		{0x000A, "ROLE", "UINT8", "", "Assigned role code"},
		{0x000B, "AUTHORITY_LEVEL", "UINT8", "", "Command authority level"},
		{0x000C, "REGISTER_AGENT", "STRUCT", "", "Register with coordinator"},
		{0x000D, "DEREGISTER_AGENT", "UUID", "", "Deregister agent"},

		// Message Routing (0x0020-0x003F)
		{0x0020, "SOURCE_AGENT", "UUID", "", "Message originator"},
		{0x0021, "DEST_AGENT", "UUID", "", "Message destination"},
		{0x0022, "BROADCAST", "NONE", "", "Broadcast to all agents"},
		{0x0023, "MULTICAST_GROUP", "UINT16", "", "Target multicast group"},
		{0x0024, "RELAY_VIA", "UUID", "", "Relay through specified agent"},
		{0x0025, "HOP_COUNT", "UINT8", "", "Remaining relay hops"},
		{0x0026, "ROUTE_REQUEST", "UUID", "", "Request route to agent"},
		{0x0027, "ROUTE_REPLY", "LIST<UUID>", "", "Route as agent list"},
		{0x0028, "ACK_REQUIRED", "BOOL", "", "Acknowledgement required"},
		{0x0029, "ACK", "UINT32", "", "Acknowledge sequence number"},
		{0x002A, "NACK", "UINT32", "", "Negative acknowledge"},
		{0x002B, "RETRANSMIT_REQUEST", "UINT32", "", "Request retransmission"},

		// Channel Management (0x0040-0x005F)
		{0x0040, "CHANNEL_OPEN", "UINT16", "", "Open logical channel"},
		{0x0041, "CHANNEL_CLOSE", "UINT16", "", "Close logical channel"},
		{0x0042, "CHANNEL_ID", "UINT16", "", "Channel identifier"},
		{0x0043, "CHANNEL_QUALITY", "FLOAT16", "", "Link quality estimate"},
		{0x0044, "BANDWIDTH_AVAILABLE", "FLOAT32", "bps", "Available bandwidth"},
		{0x0045, "LATENCY_ESTIMATE", "FLOAT32", "ms", "Round-trip latency estimate"},
		{0x0046, "SIGNAL_STRENGTH", "FLOAT16", "dBm", "Received signal strength"},
		{0x0047, "CHANNEL_SWITCH", "UINT8", "", "Switch physical channel"},
		{0x0048, "ENCRYPTION_MODE", "UINT8", "", "Active encryption mode"},
		{0x0049, "KEY_EXCHANGE", "BYTES", "", "Key exchange payload"},
		{0x004A, "HEARTBEAT", "NONE", "", "Liveness heartbeat"},
		{0x004B, "KEEPALIVE_INTERVAL", "UINT16", "s", "Requested keepalive period"},

		// Status and Social (0x0060-0x006F)
		{0x0060, "GREETING", "NONE", "", "Opening greeting"},
		{0x0061, "FAREWELL_MSG", "NONE", "", "Closing farewell"},
		{0x0062, "THANKS", "NONE", "", "Expression of thanks"},
		{0x0063, "APOLOGY", "NONE", "", "Expression of apology"},
		{0x0064, "CONFIRM", "NONE", "", "Confirm understanding"},
		{0x0065, "DENY", "NONE", "", "Deny/refuse"},
		{0x0066, "HELP_REQUEST", "STRING", "", "Request for assistance"},
		{0x0067, "HELP_OFFER", "STRING", "", "Offer of assistance"},
		{0x0068, "STATUS_REPORT", "STRUCT", "", "General status summary"},
		{0x0069, "BUSY", "NONE", "", "Agent is busy"},
		{0x006A, "AVAILABLE", "NONE", "", "Agent is available"},
		{0x006B, "IDENTIFY_REQUEST", "NONE", "", "Request identification"},
		{0x006C, "IDENTIFY_RESPONSE", "AGENT_ID", "", "Identification reply"},

		// Data Synchronization (0x0080-0x008F)
		{0x0080, "SYNC_REQUEST", "NONE", "", "Request state synchronization"},
		{0x0081, "SYNC_RESPONSE", "STRUCT", "", "Synchronization payload"},
		{0x0082, "STATE_VERSION", "UINT32", "", "State version counter"},
		{0x0083, "DELTA_UPDATE", "BYTES", "", "Incremental state delta"},
		{0x0084, "FULL_STATE", "BYTES", "", "Complete state snapshot"},
		{0x0085, "SUBSCRIBE", "UINT16", "", "Subscribe to topic"},
		{0x0086, "UNSUBSCRIBE", "UINT16", "", "Unsubscribe from topic"},
		{0x0087, "PUBLISH", "STRUCT{topic,payload}", "", "Publish to topic"},
		{0x0088, "TOPIC_LIST", "LIST<UINT16>", "", "Available topics"},
		{0x0089, "CLOCK_SYNC", "UINT64", "us", "Clock synchronization value"},
		{0x008A, "TIME_OFFSET", "INT64", "us", "Computed clock offset"},
		{0x008B, "CONSISTENCY_CHECK", "UINT32", "", "State consistency checksum"},
	},
}
