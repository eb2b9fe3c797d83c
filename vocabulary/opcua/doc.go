// Package opcua provides well-known predicate metadata for the OPC UA
// robotics object-type vocabulary.
//
// The default robotics vocabulary mirrors the OPC UA Robotics companion
// specification's object-type hierarchy: a motion device system that
// contains motion devices, controllers, and safety states, with axes,
// power trains, motors, and gears below the devices. Properties that
// the companion specification inherits from the Device Integration
// model (manufacturer, model, serial number) carry DI namespace IRIs;
// robotics-specific properties carry Robotics namespace IRIs.
//
// Predicates follow the registry convention for vocabulary sources:
// <vocab>.<snake_case class>.<property>, e.g.
// "opcua.motion_device_type.manufacturer". Importing the package
// registers everything in init(); a blank import is enough:
//
//	import _ "github.com/c360studio/roxmodel/vocabulary/opcua"
package opcua
