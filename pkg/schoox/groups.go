package schoox

import "context"

type GroupsService service

func (s *GroupsService) List(ctx context.Context, opts *PageOptions) (*Response, error) {
	return s.client.get(ctx, "groups", opts)
}

// AddUsers associates users with a group. userIDs is sent as the JSON body.
func (s *GroupsService) AddUsers(ctx context.Context, groupID string, userIDs any) (*Response, error) {
	return s.client.put(ctx, "groups/{groupId}/associate", nil, userIDs, groupID)
}
