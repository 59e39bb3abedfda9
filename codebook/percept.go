/*
NAME
  percept.go

DESCRIPTION
  PERCEPT-1: perception domain codebook (registry ID 0x02).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codebook

// PERCEPT1 is the perception domain codebook.
var PERCEPT1 = &Domain{
	RegistryID: 0x02,
	Name:       "PERCEPT-1",
	Entries: []DomainEntry{
		// Object Detection (0x0000-0x002F)
		{0x0000, "OBJECT", "STRUCT", "", "Detected object record"},
		{0x0001, "OBJECT_CLASS", "UINT16", "", "Object class ID"},
		{0x0002, "OBJECT_ID", "UINT32", "", "Tracked object instance ID"},
		{0x0003, "OBJECT_LIST", "LIST<OBJECT>", "", "Collection of objects"},
		{0x0004, "BOUNDING_BOX_2D", "ARRAY<FLOAT32,4>", "px", "2D bbox (x,y,w,h)"},
		{0x0005, "BOUNDING_BOX_3D", "ARRAY<FLOAT32,6>", "m", "3D bbox"},
		{0x0006, "CONFIDENCE_SCORE", "FLOAT16", "", "Detection confidence 0-1"},
		{0x0007, "TRACKING_ID", "UINT32", "", "Cross-frame tracking ID"},
		{0x0008, "OBJECT_VELOCITY", "ARRAY<FLOAT32,3>", "m/s", "Tracked object velocity"},
		{0x0009, "OBJECT_DISTANCE", "FLOAT32", "m", "Range to object"},
		{0x000A, "OBJECT_POSE", "STRUCT", "", "Object pose estimate"},
		{0x000B, "SEGMENTATION_MASK", "BYTES", "", "Encoded segmentation mask"},
		{0x000C, "KEYPOINTS", "LIST<POSITION_2D>", "px", "Detected keypoints"},

		// Spatial Relations (0x0030-0x004F)
		{0x0030, "NEAR", "NONE", "", "Spatial relation: near"},
		{0x0031, "FAR", "NONE", "", "Spatial relation: far"},
		{0x0032, "ABOVE", "NONE", "", "Spatial relation: above"},
		{0x0033, "BELOW", "NONE", "", "Spatial relation: below"},
		{0x0034, "LEFT_OF", "NONE", "", "Spatial relation: left of"},
		{0x0035, "RIGHT_OF", "NONE", "", "Spatial relation: right of"},
		{0x0036, "IN_FRONT_OF", "NONE", "", "Spatial relation: in front of"},
		{0x0037, "BEHIND", "NONE", "", "Spatial relation: behind"},
		{0x0038, "INSIDE", "NONE", "", "Spatial relation: inside"},
		{0x0039, "OUTSIDE", "NONE", "", "Spatial relation: outside"},
		{0x003A, "TOUCHING", "NONE", "", "Spatial relation: touching"},
		{0x003B, "OVERLAPPING", "NONE", "", "Spatial relation: overlapping"},
		{0x003C, "ALIGNED_WITH", "NONE", "", "Spatial relation: aligned with"},

		// Visual Properties (0x0050-0x006F)
		{0x0050, "COLOR_RGB", "ARRAY<UINT8,3>", "", "RGB color"},
		{0x0051, "COLOR_NAME", "STRING", "", "Named color"},
		{0x0052, "TEXTURE", "UINT8", "", "Texture classification"},
		{0x0053, "SHAPE", "UINT8", "", "Shape classification"},
		{0x0054, "SIZE_ESTIMATE", "FLOAT32", "m", "Estimated object size"},
		{0x0055, "BRIGHTNESS", "FLOAT16", "", "Relative brightness"},
		{0x0056, "MATERIAL", "UINT8", "", "Material classification"},
		{0x0057, "TRANSPARENCY", "FLOAT16", "", "Transparency 0-1"},

		// Sensor Data (0x0070-0x008F)
		{0x0070, "DEPTH_MAP", "BYTES", "", "Encoded depth map"},
		{0x0071, "POINT_CLOUD", "BYTES", "", "Encoded point cloud"},
		{0x0072, "RGB_IMAGE", "BYTES", "", "Encoded RGB image"},
		{0x0073, "THERMAL_IMAGE", "BYTES", "", "Encoded thermal image"},
		{0x0074, "LIDAR_SCAN", "BYTES", "", "Encoded LiDAR scan"},
		{0x0075, "SONAR_RETURN", "ARRAY<FLOAT32,N>", "m", "Sonar range returns"},
		{0x0076, "AUDIO_LEVEL", "FLOAT16", "dB", "Ambient audio level"},
		{0x0077, "TEMPERATURE", "FLOAT32", "degC", "Ambient temperature"},
		{0x0078, "HUMIDITY", "FLOAT16", "%", "Relative humidity"},
		{0x0079, "PRESSURE", "FLOAT32", "Pa", "Ambient pressure"},
	},
}
