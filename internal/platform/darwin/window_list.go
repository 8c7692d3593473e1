//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>
#include <stdint.h>

typedef struct {
	uint32_t number;
	int has_number;
	int32_t store_type;
	int has_store_type;
	int32_t layer;
	int has_layer;
	int32_t sharing_state;
	int has_sharing_state;
	double alpha;
	int has_alpha;
	int32_t owner_pid;
	int has_owner_pid;
	int64_t memory_usage;
	int has_memory_usage;

	// 0 = missing, 1 = decoded, 2 = present but undecodable
	int bounds_state;
	CGRect bounds;

	char *owner_name;
	char *name;
	// -1 = absent
	int on_screen;
	int video_memory;
} wg_window_info;

static char *wg_copy_string(CFDictionaryRef dict, CFStringRef key) {
	CFTypeRef value = CFDictionaryGetValue(dict, key);
	if (value == NULL || CFGetTypeID(value) != CFStringGetTypeID()) {
		return NULL;
	}
	CFStringRef str = (CFStringRef)value;
	CFIndex length = CFStringGetLength(str);
	CFIndex maxSize = CFStringGetMaximumSizeForEncoding(length, kCFStringEncodingUTF8) + 1;
	char *buffer = (char *)malloc(maxSize);
	if (buffer == NULL) {
		return NULL;
	}
	if (CFStringGetCString(str, buffer, maxSize, kCFStringEncodingUTF8)) {
		return buffer;
	}
	free(buffer);
	return NULL;
}

static int wg_read_number(CFDictionaryRef dict, CFStringRef key, CFNumberType type, void *out) {
	CFTypeRef value = CFDictionaryGetValue(dict, key);
	if (value == NULL || CFGetTypeID(value) != CFNumberGetTypeID()) {
		return 0;
	}
	return CFNumberGetValue((CFNumberRef)value, type, out) ? 1 : 0;
}

static int wg_read_bool(CFDictionaryRef dict, CFStringRef key) {
	CFTypeRef value = CFDictionaryGetValue(dict, key);
	if (value == NULL || CFGetTypeID(value) != CFBooleanGetTypeID()) {
		return -1;
	}
	return CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
}

static void wg_decode(CFDictionaryRef dict, wg_window_info *info) {
	int64_t number = 0;
	info->has_number = wg_read_number(dict, kCGWindowNumber, kCFNumberSInt64Type, &number);
	info->number = (uint32_t)number;
	info->has_store_type = wg_read_number(dict, kCGWindowStoreType, kCFNumberSInt32Type, &info->store_type);
	info->has_layer = wg_read_number(dict, kCGWindowLayer, kCFNumberSInt32Type, &info->layer);
	info->has_sharing_state = wg_read_number(dict, kCGWindowSharingState, kCFNumberSInt32Type, &info->sharing_state);
	info->has_alpha = wg_read_number(dict, kCGWindowAlpha, kCFNumberDoubleType, &info->alpha);
	info->has_owner_pid = wg_read_number(dict, kCGWindowOwnerPID, kCFNumberSInt32Type, &info->owner_pid);
	info->has_memory_usage = wg_read_number(dict, kCGWindowMemoryUsage, kCFNumberSInt64Type, &info->memory_usage);

	CFTypeRef bounds = CFDictionaryGetValue(dict, kCGWindowBounds);
	if (bounds == NULL || CFGetTypeID(bounds) != CFDictionaryGetTypeID()) {
		info->bounds_state = 0;
	} else if (CGRectMakeWithDictionaryRepresentation((CFDictionaryRef)bounds, &info->bounds)) {
		info->bounds_state = 1;
	} else {
		info->bounds_state = 2;
	}

	info->owner_name = wg_copy_string(dict, kCGWindowOwnerName);
	info->name = wg_copy_string(dict, kCGWindowName);
	info->on_screen = wg_read_bool(dict, kCGWindowIsOnscreen);
	info->video_memory = wg_read_bool(dict, kCGWindowBackingLocationVideoMemory);
}

// Returns -1 when the window server hands back no list at all.
static int wg_list_windows(uint32_t number, int single, wg_window_info **out, int *count) {
	*out = NULL;
	*count = 0;

	CFArrayRef list;
	if (single) {
		list = CGWindowListCopyWindowInfo(kCGWindowListOptionIncludingWindow, number);
	} else {
		list = CGWindowListCopyWindowInfo(kCGWindowListOptionAll, kCGNullWindowID);
	}
	if (list == NULL) {
		return -1;
	}

	CFIndex n = CFArrayGetCount(list);
	if (n == 0) {
		CFRelease(list);
		return 0;
	}
	wg_window_info *infos = (wg_window_info *)calloc(n, sizeof(wg_window_info));
	if (infos == NULL) {
		CFRelease(list);
		return -2;
	}
	for (CFIndex i = 0; i < n; i++) {
		infos[i].on_screen = -1;
		infos[i].video_memory = -1;
		CFTypeRef entry = CFArrayGetValueAtIndex(list, i);
		if (entry == NULL || CFGetTypeID(entry) != CFDictionaryGetTypeID()) {
			continue;
		}
		wg_decode((CFDictionaryRef)entry, &infos[i]);
	}
	CFRelease(list);

	*out = infos;
	*count = (int)n;
	return 0;
}

static void wg_free_windows(wg_window_info *infos, int count) {
	if (infos == NULL) {
		return;
	}
	for (int i = 0; i < count; i++) {
		free(infos[i].owner_name);
		free(infos[i].name);
	}
	free(infos);
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mj1618/window-getter/internal/platform"
)

// cgWindowList reads the window list from the window server.
type cgWindowList struct{}

func (cgWindowList) copyWindowInfo(number uint32, single bool) ([]WindowInfo, error) {
	var cInfos *C.wg_window_info
	var cCount C.int
	var cSingle C.int
	if single {
		cSingle = 1
	}

	switch rc := C.wg_list_windows(C.uint32_t(number), cSingle, &cInfos, &cCount); rc {
	case 0:
	case -1:
		return nil, platform.NoWindowEnvironment("CGWindowListCopyWindowInfo", nil)
	default:
		return nil, platform.PlatformSpecific("CGWindowListCopyWindowInfo", fmt.Errorf("decode failed (rc=%d)", int(rc)))
	}
	defer C.wg_free_windows(cInfos, cCount)

	count := int(cCount)
	if count == 0 {
		return []WindowInfo{}, nil
	}

	cSlice := unsafe.Slice(cInfos, count)
	infos := make([]WindowInfo, count)
	for i := range cSlice {
		infos[i] = decodeWindowInfo(&cSlice[i])
	}
	return infos, nil
}

func decodeWindowInfo(c *C.wg_window_info) WindowInfo {
	info := WindowInfo{
		Number:       uint32(c.number),
		StoreType:    int32(c.store_type),
		Layer:        int32(c.layer),
		SharingState: int32(c.sharing_state),
		Alpha:        float64(c.alpha),
		OwnerPID:     int32(c.owner_pid),
		MemoryUsage:  int64(c.memory_usage),
		OwnerName:    optionalString(c.owner_name),
		Name:         optionalString(c.name),
		OnScreen:     optionalBool(c.on_screen),
		VideoMemory:  optionalBool(c.video_memory),
	}

	switch c.bounds_state {
	case 1:
		info.BoundsState = BoundsDecoded
		info.X = float64(c.bounds.origin.x)
		info.Y = float64(c.bounds.origin.y)
		info.Width = float64(c.bounds.size.width)
		info.Height = float64(c.bounds.size.height)
	case 2:
		info.BoundsState = BoundsUndecodable
	default:
		info.BoundsState = BoundsMissing
		info.Missing = append(info.Missing, keyBounds)
	}

	required := []struct {
		key     string
		present C.int
	}{
		{keyNumber, c.has_number},
		{keyStoreType, c.has_store_type},
		{keyLayer, c.has_layer},
		{keySharingState, c.has_sharing_state},
		{keyAlpha, c.has_alpha},
		{keyOwnerPID, c.has_owner_pid},
		{keyMemoryUsage, c.has_memory_usage},
	}
	for _, r := range required {
		if r.present == 0 {
			info.Missing = append(info.Missing, r.key)
		}
	}
	return info
}

func optionalString(s *C.char) *string {
	if s == nil {
		return nil
	}
	v := C.GoString(s)
	return &v
}

func optionalBool(v C.int) *bool {
	if v < 0 {
		return nil
	}
	b := v != 0
	return &b
}
